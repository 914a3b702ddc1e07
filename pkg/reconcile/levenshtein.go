package reconcile

// Levenshtein returns the minimum number of single-character insertions,
// deletions, and substitutions needed to transform a into b. It is symmetric
// and zero for identical inputs.
//
// The implementation keeps only two rows of the distance matrix, so it runs
// in O(len(a)·len(b)) time and O(min(len(a), len(b))) space. Inputs here are
// normalized keys, but the function is rune-correct for arbitrary strings.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Keep the shorter string as the row to minimize working memory.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range ra {
		curr[0] = i + 1
		for j, cb := range rb {
			insertion := prev[j+1] + 1
			deletion := curr[j] + 1
			substitution := prev[j]
			if ca != cb {
				substitution++
			}
			curr[j+1] = min(insertion, deletion, substitution)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
