package algorithms

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPrime(t *testing.T) {
	cases := map[int]int{
		-5:   PrimeFallback,
		0:    PrimeFallback,
		1:    PrimeFallback,
		2:    2,
		3:    3,
		4:    3,
		10:   7,
		11:   11,
		100:  97,
		1024: 1021,
		5120: 5119,
	}
	for n, want := range cases {
		assert.Equalf(t, want, FindPrime(n), "FindPrime(%d)", n)
	}
}

func TestBinarySearch(t *testing.T) {
	arr := []int{2, 4, 6, 8, 10}
	assert.Equal(t, 0, BinarySearchOrdered(2, arr))
	assert.Equal(t, 4, BinarySearchOrdered(10, arr))
	assert.Equal(t, 2, BinarySearchOrdered(6, arr))
	assert.Equal(t, NotFound, BinarySearchOrdered(5, arr))
	assert.Equal(t, NotFound, BinarySearchOrdered(11, arr))
	assert.Equal(t, NotFound, BinarySearchOrdered(1, arr))
	assert.Equal(t, NotFound, BinarySearchOrdered(1, []int{}))
	assert.Equal(t, NotFound, BinarySearch(4, arr, 3, 2, Ordered[int]))
}

func TestFastSort(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 17, 1000} {
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rand.Intn(50)
		}
		want := append([]int{}, arr...)
		sort.Ints(want)
		FastSortOrdered(arr)
		require.Equal(t, want, arr)
	}
}

func TestFastSortRange(t *testing.T) {
	arr := []int{9, 5, 3, 1, 0}
	FastSort(arr, 1, 3, Ordered[int])
	assert.Equal(t, []int{9, 1, 3, 5, 0}, arr)
}

func TestSortAndReverse(t *testing.T) {
	arr := []string{"pear", "apple", "fig", "banana"}
	Sort(arr, Ordered[string])
	assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, arr)
	Reverse(arr)
	assert.Equal(t, []string{"pear", "fig", "banana", "apple"}, arr)

	odd := []int{1, 2, 3}
	Reverse(odd)
	assert.Equal(t, []int{3, 2, 1}, odd)
}

func TestPartitionByRule(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5, 6, 7}
	even := func(v int) bool { return v%2 == 0 }
	idx := PartitionByRule(arr, len(arr), even)
	require.Equal(t, 4, idx)
	for i := 0; i < idx; i++ {
		assert.False(t, even(arr[i]))
	}
	for i := idx; i < len(arr); i++ {
		assert.True(t, even(arr[i]))
	}

	assert.Equal(t, 3, PartitionByRule([]int{1, 3, 5}, 3, even))
	assert.Equal(t, 0, PartitionByRule([]int{2, 4}, 2, even))

	// only the first count elements take part
	part := []int{2, 1, 4, 3}
	assert.Equal(t, 1, PartitionByRule(part, 2, even))
	assert.Equal(t, []int{1, 2, 4, 3}, part)

	// count 越界时截断到 [0, len(arr)]
	assert.Equal(t, 0, PartitionByRule([]int{1, 2}, -3, even))
	assert.Equal(t, 1, PartitionByRule([]int{1, 2}, 9, even))
}

func TestFindMode(t *testing.T) {
	res := FindMode([]int{3, 1, 3, 2, 3, 1}, Ordered[int])
	require.True(t, res.Found())
	assert.Equal(t, 3, res.Mode)
	assert.Equal(t, 3, res.Count)

	last := FindMode([]int{1, 2, 5, 5}, Ordered[int])
	assert.Equal(t, 5, last.Mode)
	assert.Equal(t, 2, last.Count)

	same := FindMode([]int{7, 7, 7}, Ordered[int])
	assert.Equal(t, 7, same.Mode)
	assert.Equal(t, 3, same.Count)

	tied := FindMode([]int{1, 1, 2, 2}, Ordered[int])
	assert.False(t, tied.Found())
	assert.Equal(t, -1, tied.Count)

	assert.False(t, FindMode([]int{1}, Ordered[int]).Found())
	assert.False(t, FindMode([]int(nil), Ordered[int]).Found())
}
