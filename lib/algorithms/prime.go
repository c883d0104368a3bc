package algorithms

// PrimeFallback 是 n <= 1 时 FindPrime 的返回值
const PrimeFallback = 1

// FindPrime 在 [0, n] 上做埃氏筛，返回不超过 n 的最大素数
func FindPrime(n int) int {
	if n <= 1 {
		return PrimeFallback
	}
	composite := make([]bool, n+1)
	composite[0], composite[1] = true, true
	for p := 2; p*p <= n; p++ {
		if composite[p] {
			continue
		}
		for i := p * p; i <= n; i += p {
			composite[i] = true
		}
	}
	for i := n; i >= 2; i-- {
		if !composite[i] {
			return i
		}
	}
	return PrimeFallback
}
