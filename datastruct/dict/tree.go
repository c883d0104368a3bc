package dict

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"godis-dict/lib/algorithms"
)

const maxTreeEntries = math.MaxInt32

// BSTDictionary 是按 key 哈希值排序的 AVL 树，哈希相同的 key 通过冲突链共用一个节点
type BSTDictionary struct {
	root    *node
	count   int
	nodes   int
	chained int
}

// NewBSTDictionary 忽略容量参数，树每次只增长一个节点
func NewBSTDictionary(_ int) *BSTDictionary {
	return &BSTDictionary{}
}

func (t *BSTDictionary) Type() Type {
	return BST
}

func (t *BSTDictionary) Size() int {
	if t == nil {
		panic("Nil BSTDictionary")
	}
	return t.count
}

func (t *BSTDictionary) Add(key Key, value any) (bool, error) {
	if t == nil {
		panic("Nil BSTDictionary")
	}
	if err := checkArgs("add", key, value); err != nil {
		return false, err
	}
	hash := key.HashCode()
	if t.count >= maxTreeEntries {
		if p := t.lookup(key, hash); p != nil {
			p.SetValue(value)
			return false, nil
		}
		return false, errors.Wrapf(ErrOutOfMemory, "tree holds %d entries", t.count)
	}
	var res insertResult
	t.root, res = t.insert(t.root, key, value, hash)
	switch res {
	case created:
		t.nodes++
	case chained:
		t.chained++
	default:
		return false, nil
	}
	t.count++
	return true, nil
}

func (t *BSTDictionary) insert(n *node, key Key, value any, hash int32) (*node, insertResult) {
	if n == nil {
		return newNode(key, value, hash), created
	}
	var res insertResult
	switch {
	case hash < n.hash:
		n.left, res = t.insert(n.left, key, value, hash)
	case hash > n.hash:
		n.right, res = t.insert(n.right, key, value, hash)
	default:
		return n, n.put(key, value)
	}
	// 只有新建节点才会改变高度
	if res != created {
		return n, res
	}
	n.updateHeight()
	return rebalance(n), res
}

func (t *BSTDictionary) Find(key Key) (any, bool, error) {
	if t == nil {
		panic("Nil BSTDictionary")
	}
	if isNil(key) {
		return nil, false, errors.Wrap(ErrInvalidArgument, "find: nil key")
	}
	p := t.lookup(key, key.HashCode())
	if p == nil {
		return nil, false, nil
	}
	return p.value, true, nil
}

func (t *BSTDictionary) lookup(key Key, hash int32) *Pair {
	current := t.root
	for current != nil {
		switch {
		case hash == current.hash:
			return current.find(key)
		case hash < current.hash:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

func (t *BSTDictionary) EnsureCapacity(_ int) error {
	return nil
}

func (t *BSTDictionary) Compress() error {
	return nil
}

// ToSortedArray 按哈希顺序收集所有 Pair（展开冲突链），再按 key 排序
func (t *BSTDictionary) ToSortedArray() []*Pair {
	res := make([]*Pair, 0, t.count)
	t.root.inOrder(func(n *node) bool {
		res = append(res, n.pair)
		if n.chain != nil {
			n.chain.forEach(func(p *Pair) bool {
				res = append(res, p)
				return true
			})
		}
		return true
	})
	algorithms.FastSortAll(res, comparePairs)
	return res
}

func (t *BSTDictionary) ForEach(p Processor) {
	if t == nil {
		panic("Nil BSTDictionary")
	}
	t.root.inOrder(func(n *node) bool {
		if !p(n.pair) {
			return false
		}
		if n.chain != nil {
			return n.chain.forEach(p)
		}
		return true
	})
}

func (t *BSTDictionary) Keys() []Key {
	return keysOf(t)
}

func (t *BSTDictionary) Clear() {
	*t = BSTDictionary{}
}

// Height 遍历整棵树计算高度，不使用缓存的 height
func (t *BSTDictionary) Height() int {
	return measureHeight(t.root)
}

func (t *BSTDictionary) Status() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tree has max depth of: %d\n", t.Height()))
	sb.WriteString(fmt.Sprintf("Tree has %d nodes holding %d entries.\n", t.nodes, t.count))
	sb.WriteString(fmt.Sprintf("Tree has %d entries in collision chains.\n", t.chained))
	return sb.String()
}
