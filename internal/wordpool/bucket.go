package wordpool

import "math/rand/v2"

// Bucket picks the group to draw from for a target length: the largest
// length from 1 up to target (target is clamped to 1), falling back to the
// largest length in the pool. The empty-string group never matches a
// target. ok is false for an empty pool.
func (p *Pool) Bucket(target int) (n int, ok bool) {
	if p.Len() == 0 {
		return 0, false
	}
	if target < 1 {
		target = 1
	}

	best, bestAny := 0, -1
	for _, l := range p.order {
		if l >= 1 && l <= target && l > best {
			best = l
		}
		if l > bestAny {
			bestAny = l
		}
	}
	if best > 0 {
		return best, true
	}
	return bestAny, true
}

// Pick returns a random word from Bucket(target). ok is false when the pool
// or the chosen group is empty.
func (p *Pool) Pick(target int, rng *rand.Rand) (string, bool) {
	n, ok := p.Bucket(target)
	if !ok {
		return "", false
	}
	words := p.groups[n]
	if len(words) == 0 {
		return "", false
	}
	return words[rng.IntN(len(words))], true
}
