package wordpool

// Group partitions words by length. The first occurrence of a word wins and
// later duplicates are dropped, wherever they would have landed. Empty input
// yields an empty pool.
func Group(words []string) *Pool {
	p := NewPool()
	for _, w := range words {
		p.Add(w)
	}
	return p
}
