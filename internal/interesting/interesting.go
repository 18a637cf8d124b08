// Package interesting implements the variance test and frequency-aware
// duplicate pruning that decide when a batch of I/O pairs is worth
// keeping (spec.md §4.F).
package interesting

import "iogen/internal/value"

// Pair is one accumulated (input tuple, output) observation.
type Pair struct {
	Input  []value.Value
	Output value.Value
}

// Variance computes the population variance of a batch's outputs.
// Integer outputs are used directly; sequence outputs are reduced to
// their sum first. If every sequence output is empty, variance is
// undefined (ok=false) and the batch can never be interesting.
func Variance(pairs []Pair) (variance float64, ok bool) {
	if len(pairs) == 0 {
		return 0, false
	}

	nums := make([]float64, 0, len(pairs))
	anyNonEmptySeq := false
	allSeq := true
	for _, p := range pairs {
		switch p.Output.Kind {
		case value.KInt:
			allSeq = false
			nums = append(nums, float64(p.Output.Int))
		case value.KSeq:
			if len(p.Output.Seq) > 0 {
				anyNonEmptySeq = true
			}
			sum := 0
			for _, x := range p.Output.Seq {
				sum += x
			}
			nums = append(nums, float64(sum))
		default:
			allSeq = false
			nums = append(nums, 0)
		}
	}
	if allSeq && !anyNonEmptySeq {
		return 0, false
	}

	mean := 0.0
	for _, n := range nums {
		mean += n
	}
	mean /= float64(len(nums))

	sq := 0.0
	for _, n := range nums {
		d := n - mean
		sq += d * d
	}
	return sq / float64(len(nums)), true
}

// IsInteresting reports whether a batch's outputs clear minVariance.
// An undefined variance (all-empty-sequence outputs) is never
// interesting, regardless of the threshold.
func IsInteresting(pairs []Pair, minVariance float64) bool {
	v, ok := Variance(pairs)
	return ok && v >= minVariance
}

// Reduce prunes pairs down toward numExamples using frequency-aware
// eviction: walking pairs in order, a pair whose output's running
// count exceeds the mean count across all distinct outputs is queued
// for removal at the front of the removal list (evicted first);
// otherwise it's queued at the back. At most len(pairs)-numExamples
// entries are ever removed, and the result preserves the relative
// order of the pairs that survive.
func Reduce(pairs []Pair, numExamples int) []Pair {
	if len(pairs) <= numExamples {
		return pairs
	}

	keys := make([]string, len(pairs))
	freq := make(map[string]int, len(pairs))
	for i, p := range pairs {
		k := p.Output.String()
		keys[i] = k
		freq[k]++
	}

	totalCount := 0
	for _, c := range freq {
		totalCount += c
	}
	meanCount := float64(totalCount) / float64(len(freq))

	removable := make([]int, 0, len(pairs))
	running := make(map[string]int, len(freq))
	for i, k := range keys {
		running[k]++
		if float64(running[k]) > meanCount {
			removable = append([]int{i}, removable...)
		} else {
			removable = append(removable, i)
		}
	}

	maxRemove := len(pairs) - numExamples
	toRemove := make(map[int]bool, maxRemove)
	for i := 0; i < maxRemove && i < len(removable); i++ {
		toRemove[removable[i]] = true
	}

	kept := make([]Pair, 0, len(pairs))
	for i, p := range pairs {
		if !toRemove[i] {
			kept = append(kept, p)
		}
	}
	if len(kept) > numExamples {
		kept = kept[:numExamples]
	}
	return kept
}
