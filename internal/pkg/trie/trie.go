// Package trie implements the prefix index the fuzzy matcher uses to resolve
// partially typed query terms against the catalog vocabulary.
package trie

type TrieNode struct {
	Children    map[rune]*TrieNode
	ChildrenArr []rune
	IsEnd       bool
}

type Trie struct {
	Root *TrieNode
}

func NewTrie() *Trie {
	return &Trie{Root: &TrieNode{Children: make(map[rune]*TrieNode)}}
}

func (t *Trie) Insert(key string) {
	node := t.Root
	for _, ch := range key {
		if _, exists := node.Children[ch]; !exists {
			node.Children[ch] = &TrieNode{Children: make(map[rune]*TrieNode)}
			node.ChildrenArr = append(node.ChildrenArr, ch)
		}
		node = node.Children[ch]
	}
	node.IsEnd = true
}

// SearchPrefix returns up to prefixCount indexed words starting with prefix,
// or nil when nothing in the vocabulary has that prefix.
func (t *Trie) SearchPrefix(prefix string, prefixCount int) []string {
	node := t.Root
	for _, ch := range prefix {
		if _, exists := node.Children[ch]; !exists {
			return nil
		}
		node = node.Children[ch]
	}

	var results []string
	t.collectWords(node, prefix, &results, prefixCount)
	return results
}

func (t *Trie) collectWords(root *TrieNode, prefix string, results *[]string, prefixCount int) {
	type entry struct {
		node   *TrieNode
		prefix string
	}

	// BFS so shorter completions come out first
	queue := []entry{{root, prefix}}
	for len(queue) > 0 && len(*results) < prefixCount {
		curr := queue[0]
		queue = queue[1:]

		if curr.node.IsEnd {
			*results = append(*results, curr.prefix)
			if len(*results) >= prefixCount {
				break
			}
		}

		for _, ch := range curr.node.ChildrenArr {
			child := curr.node.Children[ch]
			queue = append(queue, entry{
				node:   child,
				prefix: curr.prefix + string(ch),
			})
		}
	}
}
