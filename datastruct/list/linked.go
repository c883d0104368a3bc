package list

var _ List = (*LinkedList)(nil)

type node struct {
	val  any
	next *node
}

// LinkedList 是只在头部插入的单向链表，最新的元素总在最前面
type LinkedList struct {
	head *node
	size int
}

func NewLinkedList(l []any) *LinkedList {
	res := &LinkedList{}
	for _, val := range l {
		res.PushFront(val)
	}
	return res
}

func (l *LinkedList) Size() int {
	if l == nil {
		panic("LinkedList is nil")
	}
	return l.size
}

func (l *LinkedList) PushFront(val any) {
	if l == nil {
		panic("LinkedList is nil")
	}
	l.head = &node{val: val, next: l.head}
	l.size++
}

func (l *LinkedList) Find(equals EqualsFunc) (val any, found bool) {
	if l == nil {
		panic("LinkedList is nil")
	}
	for n := l.head; n != nil; n = n.next {
		if equals(n.val) {
			return n.val, true
		}
	}
	return nil, false
}

func (l *LinkedList) ForEach(c Consumer) {
	if l == nil {
		panic("LinkedList is nil")
	}
	n, i := l.head, 0
	for n != nil {
		if !c(i, n.val) {
			break
		}
		i++
		n = n.next
	}
}
