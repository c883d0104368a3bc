package algorithms

// PartitionByRule 把前 count 个元素中不满足 rule 的移到前面，返回第一个满足 rule 的下标。
// count 会被截断到 [0, len(arr)]
func PartitionByRule[T any](arr []T, count int, rule func(T) bool) int {
	if count < 0 {
		count = 0
	} else if count > len(arr) {
		count = len(arr)
	}
	index := 0
	for index < count && !rule(arr[index]) {
		index++
	}
	if index >= count {
		return count
	}
	for i := index + 1; i < count; i++ {
		if !rule(arr[i]) {
			Swap(arr, i, index)
			index++
		}
	}
	return index
}
