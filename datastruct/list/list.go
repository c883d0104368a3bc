package list

type EqualsFunc func(any) bool

type Consumer func(int, any) bool

type List interface {
	Size() int
	PushFront(val any)
	Find(equals EqualsFunc) (val any, found bool)
	ForEach(c Consumer)
}
