package maze

// coinFlip draws one uniform boolean: Intn(2) == 1.
func coinFlip(src Source) bool {
	return src.Intn(2) == 1
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a using src.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, src Source) {
	for i := len(a) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
