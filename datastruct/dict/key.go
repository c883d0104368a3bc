package dict

import "fmt"

// Key 是两种引擎的索引类型，相等的 key 必须有相同的哈希值
type Key interface {
	HashCode() int32
	Equals(other Key) bool
	// Compare 决定 ToSortedArray 的顺序
	Compare(other Key) int
}

// StringKey 的哈希值为 s[0]*31^(n-1) + ... + s[n-1]，所以 "Aa" 和 "BB" 冲突。
// 按 rune 计算：非法的 UTF-8 字节都按 U+FFFD 参与计算，BMP 之外的字符也与
// UTF-16 代理对的算法结果不同。这只会多出一些冲突，Equals 仍然比较原始字节
type StringKey string

func (k StringKey) HashCode() int32 {
	var h int32
	for _, r := range string(k) {
		h = 31*h + int32(r)
	}
	return h
}

func (k StringKey) Equals(other Key) bool {
	o, ok := other.(StringKey)
	return ok && o == k
}

func (k StringKey) Compare(other Key) int {
	o, ok := other.(StringKey)
	if !ok {
		return compareForeign(k, other)
	}
	switch {
	case k < o:
		return -1
	case k > o:
		return 1
	}
	return 0
}

func (k StringKey) String() string {
	return string(k)
}

type IntKey int64

func (k IntKey) HashCode() int32 {
	return int32(k ^ k>>32)
}

func (k IntKey) Equals(other Key) bool {
	o, ok := other.(IntKey)
	return ok && o == k
}

func (k IntKey) Compare(other Key) int {
	o, ok := other.(IntKey)
	if !ok {
		return compareForeign(k, other)
	}
	switch {
	case k < o:
		return -1
	case k > o:
		return 1
	}
	return 0
}

// compareForeign 先按哈希值、再按类型名比较不同类型的 key
func compareForeign(a, b Key) int {
	ha, hb := a.HashCode(), b.HashCode()
	switch {
	case ha < hb:
		return -1
	case ha > hb:
		return 1
	}
	ta, tb := fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)
	switch {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	}
	return 0
}
