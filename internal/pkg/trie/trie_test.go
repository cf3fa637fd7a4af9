package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPrefix(t *testing.T) {
	tr := NewTrie()
	for _, w := range []string{"umroh", "umrah", "paket", "pakaian"} {
		tr.Insert(w)
	}

	got := tr.SearchPrefix("umr", 3)
	assert.ElementsMatch(t, []string{"umroh", "umrah"}, got)

	assert.Nil(t, tr.SearchPrefix("xyz", 3))
}

func TestSearchPrefixLimit(t *testing.T) {
	tr := NewTrie()
	for _, w := range []string{"pa", "pak", "pake", "paket"} {
		tr.Insert(w)
	}

	got := tr.SearchPrefix("pa", 2)
	assert.Len(t, got, 2)
	// BFS returns shorter completions first
	assert.Equal(t, "pa", got[0])
}

func TestSearchPrefixExactWord(t *testing.T) {
	tr := NewTrie()
	tr.Insert("manasik")

	got := tr.SearchPrefix("manasik", 3)
	assert.Equal(t, []string{"manasik"}, got)
}
