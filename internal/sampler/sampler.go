// Package sampler draws biased integers and sequences within compiled
// input bounds (spec.md §4.E). It follows the teacher's own taste for
// randomness — internal/ml reaches straight for math/rand.Float64()
// rather than a third-party distribution library — but wraps a
// *rand.Rand instance instead of the package-level source so a
// generation run can be seeded for reproducible tests.
package sampler

import "math/rand"

const (
	// BiasMax is the threshold below which values receive the
	// disproportionate share of sampling weight.
	BiasMax = 10
	// BiasAmount is the unnormalised weight given to [lo, BiasMax); the
	// remainder (1-BiasAmount) is spread over [BiasMax, hi).
	BiasAmount = 0.98
)

// Sampler draws biased integers and sequences from a seeded source.
type Sampler struct {
	rng *rand.Rand
}

// New builds a Sampler seeded deterministically from seed.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// DrawInt draws one integer from [lo, hi). Ranges with hi<=BiasMax or
// lo>=BiasMax bypass the bias entirely and draw uniformly.
func (s *Sampler) DrawInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	if hi <= BiasMax || lo >= BiasMax {
		return lo + s.rng.Intn(hi-lo)
	}
	counts := s.multinomialDraw(lo, hi, 1)
	for v, c := range counts {
		if c > 0 {
			return v
		}
	}
	return lo
}

// DrawSeq draws a sequence of exactly n values from [lo, hi), biased
// the same way as DrawInt, then shuffles the expanded multiset so
// repeated values aren't clustered by weight class.
func (s *Sampler) DrawSeq(lo, hi, n int) []int {
	if n <= 0 {
		return nil
	}
	if hi <= lo {
		out := make([]int, n)
		for i := range out {
			out[i] = lo
		}
		return out
	}
	if hi <= BiasMax || lo >= BiasMax {
		out := make([]int, n)
		for i := range out {
			out[i] = lo + s.rng.Intn(hi-lo)
		}
		return out
	}

	counts := s.multinomialDraw(lo, hi, n)
	out := make([]int, 0, n)
	for v := lo; v < hi; v++ {
		for c := counts[v]; c > 0; c-- {
			out = append(out, v)
		}
	}
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// DrawLen picks a sequence length uniformly from [minLen, maxLen).
func (s *Sampler) DrawLen(minLen, maxLen int) int {
	if maxLen <= minLen {
		return minLen
	}
	return minLen + s.rng.Intn(maxLen-minLen)
}

// multinomialDraw builds the skewed weight vector over [lo, hi) — mass
// BiasAmount spread uniformly over [lo, min(hi,BiasMax)), mass
// 1-BiasAmount spread uniformly over [BiasMax, hi) — normalizes it,
// and draws a multinomial sample of size draws, returning per-value
// counts keyed by the value itself.
func (s *Sampler) multinomialDraw(lo, hi, draws int) map[int]int {
	lowWidth := BiasMax - lo
	if lowWidth < 0 {
		lowWidth = 0
	}
	highWidth := hi - BiasMax
	if highWidth < 0 {
		highWidth = 0
	}

	weights := make([]float64, 0, hi-lo)
	values := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		var w float64
		if v < BiasMax {
			if lowWidth > 0 {
				w = BiasAmount / float64(lowWidth)
			}
		} else {
			if highWidth > 0 {
				w = (1 - BiasAmount) / float64(highWidth)
			}
		}
		weights = append(weights, w)
		values = append(values, v)
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}

	counts := make(map[int]int, len(values))
	for d := 0; d < draws; d++ {
		r := s.rng.Float64() * total
		acc := 0.0
		chosen := values[len(values)-1]
		for i, w := range weights {
			acc += w
			if r <= acc {
				chosen = values[i]
				break
			}
		}
		counts[chosen]++
	}
	return counts
}
