package dsl

import "iogen/internal/value"

func binaryPredicate(name string, fn func(int, int) bool) *Function {
	return &Function{
		Name: name,
		Sig:  []value.Type{value.TInt, value.TInt, value.TBool},
		Eval: func(args []value.Value) (value.Value, error) {
			if len(args) != 2 || args[0].Kind != value.KInt || args[1].Kind != value.KInt {
				return value.Value{}, evalArgErr(name, args, "expected two int arguments")
			}
			return value.Bool_(fn(args[0].Int, args[1].Int)), nil
		},
		// Comparisons feed no further arithmetic in any supported
		// program (their result is bool); operand bounds pass through
		// unconstrained, same treatment as the unary predicate lambdas.
		Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}, {lo, hi}} },
	}
}

// GetExtendedDSL builds the "extended" catalogue (spec §4.B): the
// simple catalogue's head/last/tail/count/len, plus sum/max/min/
// reverse/sort/unique/index, the +/-/* scalar lambdas with "map
// <lambda>" specializations (only over lambdas of signature (int,int) —
// since +, -, * all have arity 2, this generates zero MAP entries,
// preserving the reference's own dead-code shape rather than "fixing"
// it), boolean predicate lambdas (even?/odd?/negative?/positive?),
// their "filter <pred>" specializations, and the direct comparison
// forms (>= < <= > ==) with curried "filter <cmp>" specializations.
func GetExtendedDSL(maxBound int) *Language {
	null := maxBound

	lambdas := []*Function{
		binaryLambda("+", func(i, j int) int { return i + j }, func(lo, hi, l int) [][2]int {
			alo, ahi := addSubBounds(lo, hi)
			return [][2]int{{alo, ahi}, {alo, ahi}}
		}),
		binaryLambda("-", func(i, j int) int { return i - j }, func(lo, hi, l int) [][2]int {
			alo, ahi := addSubBounds(lo, hi)
			return [][2]int{{alo, ahi}, {alo, ahi}}
		}),
		binaryLambda("*", func(i, j int) int { return i * j }, func(lo, hi, l int) [][2]int {
			mlo, mhi := mulBounds(lo, hi)
			return [][2]int{{mlo, mhi}, {mlo, mhi}}
		}),
	}

	predicates := []*Function{
		predicateLambda("even?", func(i int) bool { return i%2 == 0 }),
		predicateLambda("odd?", func(i int) bool { return i%2 != 0 }),
		predicateLambda("negative?", func(i int) bool { return i < 0 }),
		predicateLambda("positive?", func(i int) bool { return i > 0 }),
	}

	comparisons := []*Function{
		binaryPredicate(">=", func(i, j int) bool { return i >= j }),
		binaryPredicate("<", func(i, j int) bool { return i < j }),
		binaryPredicate("<=", func(i, j int) bool { return i <= j }),
		binaryPredicate(">", func(i, j int) bool { return i > j }),
		binaryPredicate("==", func(i, j int) bool { return i == j }),
	}

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
			// Matches the reference exactly: tail on an empty sequence
			// yields the integer Null sentinel rather than an empty
			// list, despite its declared [int]->[int] signature.
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
		{
			Name: "max",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := args[0].Seq
				if len(xs) == 0 {
					return value.Value{}, evalArgErr("max", args, "max of empty sequence")
				}
				m := xs[0]
				for _, x := range xs[1:] {
					if x > m {
						m = x
					}
				}
				return value.Int_(m), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "min",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := args[0].Seq
				if len(xs) == 0 {
					return value.Value{}, evalArgErr("min", args, "min of empty sequence")
				}
				m := xs[0]
				for _, x := range xs[1:] {
					if x < m {
						m = x
					}
				}
				return value.Int_(m), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "reverse",
			Sig:  []value.Type{value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := value.CopySeq(args[0].Seq)
				for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
					xs[i], xs[j] = xs[j], xs[i]
				}
				return value.Seq_(xs), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "sort",
			Sig:  []value.Type{value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := value.CopySeq(args[0].Seq)
				sortInts(xs)
				return value.Seq_(xs), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "unique",
			Sig:  []value.Type{value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				seen := make(map[int]bool, len(args[0].Seq))
				var out []int
				for _, x := range args[0].Seq {
					if !seen[x] {
						seen[x] = true
						out = append(out, x)
					}
				}
				return value.Seq_(out), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "sum",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				s := 0
				for _, x := range args[0].Seq {
					s += x
				}
				return value.Int_(s), nil
			},
			Bounds: func(lo, hi, l int) [][2]int {
				slo, shi := sumBounds(lo, hi, l)
				return [][2]int{{slo, shi}}
			},
		},
		{
			Name: "index",
			Sig:  []value.Type{value.TInt, value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				n, xs := args[0].Int, args[1].Seq
				if n >= 0 && n < len(xs) {
					return value.Int_(xs[n]), nil
				}
				return value.Int_(null), nil
			},
			Bounds: countIndexBounds,
		},
	}

	fns = append(fns, lambdas...)
	fns = append(fns, predicates...)
	fns = append(fns, comparisons...)

	// "map <lambda>" is generated only for lambdas of signature
	// (int,int); +, -, * are all arity 2, so this loop contributes no
	// entries — the reference has the same gap, and spec.md preserves it.
	for _, l := range lambdas {
		if len(l.Sig) == 2 {
			l := l
			fns = append(fns, &Function{
				Name: "map " + l.Name,
				Sig:  []value.Type{value.TSeq, value.TSeq},
				Eval: func(args []value.Value) (value.Value, error) {
					xs := args[0].Seq
					out := make([]int, len(xs))
					for i, x := range xs {
						v, err := l.Eval([]value.Value{value.Int_(x)})
						if err != nil {
							return value.Value{}, err
						}
						out[i] = v.Int
					}
					return value.Seq_(out), nil
				},
				Bounds: func(lo, hi, ln int) [][2]int {
					b := l.Bounds(lo, hi, ln)
					return [][2]int{b[0]}
				},
			})
		}
	}

	// "filter <pred>" over the unary predicate lambdas: arity 1, the
	// lone operand is the sequence.
	for _, p := range predicates {
		p := p
		fns = append(fns, &Function{
			Name: "filter " + p.Name,
			Sig:  []value.Type{value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				var out []int
				for _, x := range args[0].Seq {
					v, err := p.Eval([]value.Value{value.Int_(x)})
					if err != nil {
						return value.Value{}, err
					}
					if v.Bool {
						out = append(out, x)
					}
				}
				return value.Seq_(out), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		})
	}

	// "filter <cmp>" over the binary comparisons: arity 2, curried as
	// filter(cmp) threshold seq -> keeps x from seq where x cmp threshold
	// (element on the left, the given operand on the right — see
	// test_filter_lt/_gte/_lte/_gt/_eq in the grounding tests).
	for _, c := range comparisons {
		c := c
		fns = append(fns, &Function{
			Name: "filter " + c.Name,
			Sig:  []value.Type{value.TInt, value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				threshold, xs := args[0].Int, args[1].Seq
				var out []int
				for _, x := range xs {
					v, err := c.Eval([]value.Value{value.Int_(x), value.Int_(threshold)})
					if err != nil {
						return value.Value{}, err
					}
					if v.Bool {
						out = append(out, x)
					}
				}
				return value.Seq_(out), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}, {lo, hi}} },
		})
	}

	return NewLanguage(fns)
}
