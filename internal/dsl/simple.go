package dsl

import "iogen/internal/value"

// GetSimpleDSL builds the "simple" catalogue (spec §4.B): head, last,
// tail, count and len over int sequences, with no lambdas and no
// higher-order forms. This is the smallest of the three catalogues.
func GetSimpleDSL(maxBound int) *Language {
	null := maxBound

	fns := []*Function{
		{
			Name: "head",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := args[0].Seq
				if len(xs) == 0 {
					return value.Int_(null), nil
				}
				return value.Int_(xs[0]), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "last",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := args[0].Seq
				if len(xs) == 0 {
					return value.Int_(null), nil
				}
				return value.Int_(xs[len(xs)-1]), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "tail",
			Sig:  []value.Type{value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := args[0].Seq
				if len(xs) == 0 {
					return value.Int_(null), nil
				}
				return value.Seq_(value.CopySeq(xs[1:])), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "count",
			Sig:  []value.Type{value.TInt, value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				n, xs := args[0].Int, args[1].Seq
				c := 0
				for _, x := range xs {
					if x == n {
						c++
					}
				}
				return value.Int_(c), nil
			},
			Bounds: countIndexBounds,
		},
		{
			Name: "len",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				return value.Int_(len(args[0].Seq)), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
	}

	return NewLanguage(fns)
}
