package set

import "godis-dict/datastruct/dict"

type Consumer func(dict.Key) bool

// HashSet 是基于 dict.Dictionary 的集合，成员即字典的 key
type HashSet struct {
	m dict.Dictionary
}

// NewHashSet 在引擎未知或成员为 nil 时 panic
func NewHashSet(engine dict.Type, members ...dict.Key) *HashSet {
	m, err := dict.New(engine, 0)
	if err != nil {
		panic(err)
	}
	res := &HashSet{m: m}
	for _, member := range members {
		if _, err := res.Add(member); err != nil {
			panic(err)
		}
	}
	return res
}

func (s *HashSet) Engine() dict.Type {
	return s.m.Type()
}

func (s *HashSet) Size() int {
	return s.m.Size()
}

func (s *HashSet) Add(member dict.Key) (bool, error) {
	return s.m.Add(member, struct{}{})
}

func (s *HashSet) Contains(member dict.Key) bool {
	_, ok, err := s.m.Find(member)
	return err == nil && ok
}

func (s *HashSet) ForEach(c Consumer) {
	s.m.ForEach(func(pair *dict.Pair) bool {
		return c(pair.Key())
	})
}

// Members 按 key 的顺序返回所有成员
func (s *HashSet) Members() []dict.Key {
	pairs := s.m.ToSortedArray()
	res := make([]dict.Key, len(pairs))
	for i, p := range pairs {
		res[i] = p.Key()
	}
	return res
}

func (s *HashSet) Intersect(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet(s.Engine())
	s.ForEach(func(member dict.Key) bool {
		if s1.Contains(member) {
			_, _ = res.Add(member)
		}
		return true
	})
	return res
}

func (s *HashSet) Union(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet(s.Engine())
	addFunc := func(member dict.Key) bool {
		_, _ = res.Add(member)
		return true
	}
	s.ForEach(addFunc)
	s1.ForEach(addFunc)
	return res
}

func (s *HashSet) Diff(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet(s.Engine())
	s.ForEach(func(member dict.Key) bool {
		if !s1.Contains(member) {
			_, _ = res.Add(member)
		}
		return true
	})
	return res
}
