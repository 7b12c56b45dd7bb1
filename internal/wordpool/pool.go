// Package wordpool groups words by character length.
//
// A Pool is an ordered mapping from word length to the words of that length.
// Lengths keep the order in which they were first seen, and so do the words
// inside each group. A word is stored at most once across the whole pool.
package wordpool

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Pool is a length-keyed, insertion-ordered grouping of unique words.
// The zero value is ready to use.
type Pool struct {
	order  []int
	groups map[int][]string
	seen   map[string]struct{}
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// WordLength returns the length key of a word: its number of code points.
func WordLength(w string) int {
	return utf8.RuneCountInString(w)
}

func (p *Pool) init() {
	if p.groups == nil {
		p.groups = make(map[int][]string)
	}
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
}

// Add appends w to the group of its length. It returns false when w is
// already present anywhere in the pool.
func (p *Pool) Add(w string) bool {
	p.init()
	if _, dup := p.seen[w]; dup {
		return false
	}
	p.seen[w] = struct{}{}

	n := WordLength(w)
	if _, ok := p.groups[n]; !ok {
		p.order = append(p.order, n)
	}
	p.groups[n] = append(p.groups[n], w)
	return true
}

// Set replaces the group for length n with words. A new length is appended
// to the end of the order. Words already present in other groups are
// dropped so the pool stays globally unique.
func (p *Pool) Set(n int, words []string) {
	p.init()
	if old, ok := p.groups[n]; ok {
		for _, w := range old {
			delete(p.seen, w)
		}
	} else {
		p.order = append(p.order, n)
	}

	group := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := p.seen[w]; dup {
			continue
		}
		p.seen[w] = struct{}{}
		group = append(group, w)
	}
	p.groups[n] = group
}

// Lengths returns the group keys in first-seen order.
func (p *Pool) Lengths() []int {
	out := make([]int, len(p.order))
	copy(out, p.order)
	return out
}

// Words returns the words of length n, or nil.
func (p *Pool) Words(n int) []string {
	g, ok := p.groups[n]
	if !ok {
		return nil
	}
	out := make([]string, len(g))
	copy(out, g)
	return out
}

// Has reports whether the pool has a group for length n.
func (p *Pool) Has(n int) bool {
	_, ok := p.groups[n]
	return ok
}

// Len is the number of groups.
func (p *Pool) Len() int {
	return len(p.order)
}

// Total is the number of words across all groups.
func (p *Pool) Total() int {
	total := 0
	for _, g := range p.groups {
		total += len(g)
	}
	return total
}

// Contains reports whether w is in the pool.
func (p *Pool) Contains(w string) bool {
	_, ok := p.seen[w]
	return ok
}

// MarshalJSON encodes the pool as an object keyed by the decimal length,
// preserving group order. HTML characters are not escaped.
func (p *Pool) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, n := range p.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(n)))
		buf.WriteByte(':')
		words := p.groups[n]
		if words == nil {
			words = []string{}
		}
		if err := enc.Encode(words); err != nil {
			return nil, fmt.Errorf("encode group %d: %w", n, err)
		}
		// Encode terminates each value with a newline.
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a combined pool object. It is strict: every key must
// be an integer and every value an array of strings. Use ReadCombined for
// the lenient reader.
func (p *Pool) UnmarshalJSON(data []byte) error {
	*p = Pool{}
	return decodeCombined(json.NewDecoder(bytes.NewReader(data)), p, true)
}
