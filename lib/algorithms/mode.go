package algorithms

// ModeResult 是出现次数最多的元素，众数不唯一时 Count 为 -1
type ModeResult[T any] struct {
	Mode  T
	Count int
}

func (r ModeResult[T]) Found() bool {
	return r.Count > 0
}

// FindMode 原地排序 arr 并返回唯一的众数
func FindMode[T any](arr []T, cmp CompareFunc[T]) ModeResult[T] {
	res := ModeResult[T]{Count: -1}
	if len(arr) <= 1 {
		return res
	}
	FastSortAll(arr, cmp)

	bestCount, bestIndex, tied := 0, 0, false
	run := 1
	for i := 1; i <= len(arr); i++ {
		if i < len(arr) && cmp(arr[i-1], arr[i]) == 0 {
			run++
			continue
		}
		switch {
		case run > bestCount:
			bestCount, bestIndex, tied = run, i-1, false
		case run == bestCount:
			tied = true
		}
		run = 1
	}
	if tied {
		return res
	}
	res.Mode = arr[bestIndex]
	res.Count = bestCount
	return res
}
