package algorithms

import "golang.org/x/exp/constraints"

// CompareFunc 返回负数、0、正数，分别表示 a < b、a == b、a > b
type CompareFunc[T any] func(a, b T) int

func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func Swap[T any](arr []T, first, second int) {
	arr[first], arr[second] = arr[second], arr[first]
}

func Reverse[T any](arr []T) {
	for i, j := 0, len(arr)-1; i < j; i, j = i+1, j-1 {
		Swap(arr, i, j)
	}
}

// Sort 是 O(n^2) 的交换排序，直到某一轮没有发生交换为止
func Sort[T any](arr []T, cmp CompareFunc[T]) {
	modified := true
	for modified {
		modified = false
		for i := 0; i < len(arr)-1; i++ {
			if cmp(arr[i], arr[i+1]) > 0 {
				Swap(arr, i, i+1)
				modified = true
			}
		}
	}
}

// FastSort 以中间元素为基准，对 arr[low..high]（闭区间）快速排序
func FastSort[T any](arr []T, low, high int, cmp CompareFunc[T]) {
	if low >= high {
		return
	}
	pivot := arr[int(uint(low+high)>>1)]
	l, h := low, high
	for l <= h {
		for cmp(arr[l], pivot) < 0 {
			l++
		}
		for cmp(arr[h], pivot) > 0 {
			h--
		}
		// l 与 h 必须交错才能结束，所以这里用 <=
		if l <= h {
			Swap(arr, l, h)
			l++
			h--
		}
	}
	if low < h {
		FastSort(arr, low, h, cmp)
	}
	if l < high {
		FastSort(arr, l, high, cmp)
	}
}

func FastSortAll[T any](arr []T, cmp CompareFunc[T]) {
	FastSort(arr, 0, len(arr)-1, cmp)
}

func FastSortOrdered[T constraints.Ordered](arr []T) {
	FastSort(arr, 0, len(arr)-1, Ordered[T])
}
