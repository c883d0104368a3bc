package dict

import "godis-dict/datastruct/list"

// chain 保存与节点哈希值相同但 key 不同的 Pair，最新的在最前面
type chain struct {
	entries *list.LinkedList
}

func newChain() *chain {
	return &chain{entries: list.NewLinkedList(nil)}
}

func keyEquals(key Key) list.EqualsFunc {
	return func(v any) bool {
		return v.(*Pair).key.Equals(key)
	}
}

// put 已存在时原地更新并返回 false
func (c *chain) put(key Key, value any) bool {
	if v, ok := c.entries.Find(keyEquals(key)); ok {
		v.(*Pair).SetValue(value)
		return false
	}
	c.entries.PushFront(NewPair(key, value))
	return true
}

func (c *chain) find(key Key) *Pair {
	if v, ok := c.entries.Find(keyEquals(key)); ok {
		return v.(*Pair)
	}
	return nil
}

func (c *chain) size() int {
	return c.entries.Size()
}

func (c *chain) forEach(p Processor) bool {
	cont := true
	c.entries.ForEach(func(_ int, v any) bool {
		cont = p(v.(*Pair))
		return cont
	})
	return cont
}
