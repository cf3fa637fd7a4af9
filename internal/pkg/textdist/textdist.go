// Package textdist provides edit-distance helpers shared by the lexicon
// corrector and the fuzzy matcher.
package textdist

// Distance calculates the Levenshtein edit distance between two strings
// (insert, delete, and substitute all cost 1).
func Distance(a, b string) int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 0; i <= m; i++ {
		for j := 0; j <= n; j++ {
			if i == 0 {
				dp[i][j] = j
			} else if j == 0 {
				dp[i][j] = i
			} else if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = 1 + min3(dp[i-1][j], dp[i][j-1], dp[i-1][j-1])
			}
		}
	}
	return dp[m][n]
}

// Within checks if two strings are within a given Levenshtein distance.
func Within(a, b string, maxDistance int) bool {
	return Distance(a, b) <= maxDistance
}

// Nearest returns the vocabulary entry closest to term, accepting a candidate
// only when its distance is <= maxDistance and strictly smaller than the best
// seen so far. ok is false when nothing qualifies.
func Nearest(term string, vocab []string, maxDistance int) (match string, ok bool) {
	best := maxDistance + 1
	for _, key := range vocab {
		if d := Distance(term, key); d < best {
			best = d
			match = key
			ok = true
		}
	}
	return match, ok
}

// Min helper function.
func min3(a, b, c int) int {
	if a < b && a < c {
		return a
	} else if b < c {
		return b
	}
	return c
}
