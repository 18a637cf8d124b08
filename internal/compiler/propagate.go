package compiler

import "iogen/internal/ioerrors"

// propagate runs backward interval analysis over the register table:
// every register starts at [MinBound, MaxBound], and each operation's
// bounds rule tightens its operands' intervals in place, walking from
// the last register to the first. Inputs whose final interval width
// doesn't clear MinInputRangeLength reject the whole program.
//
// When opts.MaxListLen is 0 ("L unset"), propagation is skipped
// entirely and every register keeps the initial interval.
func propagate(regs []Register, inputCount int, opts Options) ([][2]int, error) {
	lo := make([]int, len(regs))
	hi := make([]int, len(regs))
	for i := range regs {
		lo[i], hi[i] = opts.MinBound, opts.MaxBound
	}

	if opts.MaxListLen > 0 {
		for t := len(regs) - 1; t >= 0; t-- {
			r := regs[t]
			if r.Func == nil {
				continue
			}
			tightened := r.Func.Bounds(lo[t], hi[t], opts.MaxListLen)
			for i, p := range r.Pointers {
				nlo, nhi := tightened[i][0], tightened[i][1]
				if nlo > lo[p] {
					lo[p] = nlo
				}
				if nhi < hi[p] {
					hi[p] = nhi
				}
				if lo[p] > hi[p] {
					lo[p], hi[p] = 0, 0
				}
			}
		}
	}

	bounds := make([][2]int, inputCount)
	for t := 0; t < inputCount; t++ {
		if hi[t]-lo[t] <= opts.MinInputRangeLength {
			return nil, ioerrors.NewPropagationError(t, lo[t], hi[t], opts.MinInputRangeLength)
		}
		bounds[t] = [2]int{lo[t], hi[t]}
	}
	return bounds, nil
}
