package dict

type insertResult int

const (
	updated insertResult = iota
	chained
	created
)

// node 是 AVL 树的节点，按主键的哈希值排序
type node struct {
	pair   *Pair
	hash   int32
	height int
	left   *node
	right  *node
	chain  *chain
}

func newNode(key Key, value any, hash int32) *node {
	return &node{
		pair:   NewPair(key, value),
		hash:   hash,
		height: 1,
	}
}

// put 处理哈希值与本节点相同的 key
func (n *node) put(key Key, value any) insertResult {
	if n.pair.key.Equals(key) {
		n.pair.SetValue(value)
		return updated
	}
	if n.chain == nil {
		n.chain = newChain()
	}
	if n.chain.put(key, value) {
		return chained
	}
	return updated
}

func (n *node) find(key Key) *Pair {
	if n.pair.key.Equals(key) {
		return n.pair
	}
	if n.chain == nil {
		return nil
	}
	return n.chain.find(key)
}

func (n *node) chainLen() int {
	if n.chain == nil {
		return 0
	}
	return n.chain.size()
}

// visitor 返回 false 时中止遍历
type visitor func(n *node) bool

func (n *node) inOrder(visit visitor) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(visit) && visit(n) && n.right.inOrder(visit)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balance(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func (n *node) updateHeight() {
	l, r := height(n.left), height(n.right)
	if l > r {
		n.height = l + 1
	} else {
		n.height = r + 1
	}
}

// rebalance 返回旋转之后的子树根节点
func rebalance(n *node) *node {
	b := balance(n)
	switch {
	case b < -1:
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case b > 1:
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}
	return n
}

//	  n                 r
//	 / \               / \
//	a   r     ==>     n   c
//	   / \           / \
//	center c        a  center
func rotateLeft(n *node) *node {
	r := n.right
	center := r.left
	r.left = n
	n.right = center
	n.updateHeight()
	r.updateHeight()
	return r
}

func rotateRight(n *node) *node {
	l := n.left
	center := l.right
	l.right = n
	n.left = center
	n.updateHeight()
	l.updateHeight()
	return l
}

func measureHeight(n *node) int {
	if n == nil {
		return 0
	}
	l, r := measureHeight(n.left), measureHeight(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}
