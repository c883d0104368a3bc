package dict

import "fmt"

// Pair 是字典中存放的键值对，键不可变，值可以原地更新
type Pair struct {
	key   Key
	value any
}

func NewPair(key Key, value any) *Pair {
	return &Pair{key: key, value: value}
}

func (p *Pair) Key() Key {
	return p.key
}

func (p *Pair) Value() any {
	return p.value
}

func (p *Pair) SetValue(value any) {
	p.value = value
}

func (p *Pair) Compare(other *Pair) int {
	return p.key.Compare(other.key)
}

func (p *Pair) String() string {
	return fmt.Sprintf("%v=%v", p.key, p.value)
}

func comparePairs(a, b *Pair) int {
	return a.Compare(b)
}
