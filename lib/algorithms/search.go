package algorithms

import "golang.org/x/exp/constraints"

// NotFound 是 BinarySearch 找不到时的返回值
const NotFound = -1

// BinarySearch 在有序区间 arr[from..to]（闭区间）中查找 value
func BinarySearch[T any](value T, arr []T, from, to int, cmp CompareFunc[T]) int {
	if to < from {
		return NotFound
	}
	// 无符号右移，避免 from+to 溢出
	middle := int(uint(from+to) >> 1)
	c := cmp(arr[middle], value)
	switch {
	case c == 0:
		return middle
	case c > 0:
		return BinarySearch(value, arr, from, middle-1, cmp)
	default:
		return BinarySearch(value, arr, middle+1, to, cmp)
	}
}

func BinarySearchOrdered[T constraints.Ordered](value T, arr []T) int {
	return BinarySearch(value, arr, 0, len(arr)-1, Ordered[T])
}
