package dict

import (
	"strings"

	"github.com/pkg/errors"

	"godis-dict/config"
)

type Type int

const (
	BST Type = iota
	HASHTABLE
)

func (t Type) String() string {
	switch t {
	case BST:
		return "BST"
	case HASHTABLE:
		return "HASHTABLE"
	}
	return "UNKNOWN"
}

func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bst", "tree", "avl":
		return BST, nil
	case "hashtable", "hash", "robinhood":
		return HASHTABLE, nil
	}
	return 0, errors.Wrapf(ErrInvalidArgument, "unknown dictionary engine %q", s)
}

// Processor 返回 false 时停止遍历
type Processor func(pair *Pair) bool

// Dictionary 是 BSTDictionary 和 HashTable 的公共接口，二者都不是并发安全的
type Dictionary interface {
	Type() Type
	// Add 只有在新建条目时才返回 true
	Add(key Key, value any) (added bool, err error)
	Find(key Key) (value any, ok bool, err error)
	Size() int
	EnsureCapacity(minimumSize int) error
	Compress() error
	ToSortedArray() []*Pair
	Status() string
	ForEach(p Processor)
	Keys() []Key
	Clear()
}

func New(t Type, capacity int) (Dictionary, error) {
	switch t {
	case BST:
		return NewBSTDictionary(capacity), nil
	case HASHTABLE:
		return NewHashTable(capacity), nil
	}
	return nil, errors.Wrapf(ErrInvalidArgument, "unknown dictionary type %d", int(t))
}

// NewFromConfig 按 config.Properties 中的 engine 创建字典
func NewFromConfig() (Dictionary, error) {
	t, err := ParseType(config.Properties.Engine)
	if err != nil {
		return nil, err
	}
	return New(t, config.Properties.InitialCapacity)
}

func keysOf(d Dictionary) []Key {
	res := make([]Key, 0, d.Size())
	d.ForEach(func(pair *Pair) bool {
		res = append(res, pair.key)
		return true
	})
	return res
}
