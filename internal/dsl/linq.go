package dsl

import (
	"iogen/internal/value"
)

func scanl1Eval(fn func(int, int) int, xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	out := make([]int, len(xs))
	r := xs[0]
	out[0] = r
	for i := 1; i < len(xs); i++ {
		r = fn(r, xs[i])
		out[i] = r
	}
	return out
}

// scalarLambda builds a unary int->int Function.
func scalarLambda(name string, fn func(int) int, bounds Bounds) *Function {
	return &Function{
		Name: name,
		Sig:  []value.Type{value.TInt, value.TInt},
		Eval: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 || args[0].Kind != value.KInt {
				return value.Value{}, evalArgErr(name, args, "expected one int argument")
			}
			return value.Int_(fn(args[0].Int)), nil
		},
		Bounds: bounds,
	}
}

// predicateLambda builds a unary int->bool Function.
func predicateLambda(name string, fn func(int) bool) *Function {
	return &Function{
		Name: name,
		Sig:  []value.Type{value.TInt, value.TBool},
		Eval: func(args []value.Value) (value.Value, error) {
			if len(args) != 1 || args[0].Kind != value.KInt {
				return value.Value{}, evalArgErr(name, args, "expected one int argument")
			}
			return value.Bool_(fn(args[0].Int)), nil
		},
		// Predicate lambdas pass their output interval straight through;
		// their result is a bool and never feeds further arithmetic.
		Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
	}
}

// binaryLambda builds a binary (int,int)->int Function.
func binaryLambda(name string, fn func(int, int) int, bounds Bounds) *Function {
	return &Function{
		Name: name,
		Sig:  []value.Type{value.TInt, value.TInt, value.TInt},
		Eval: func(args []value.Value) (value.Value, error) {
			if len(args) != 2 || args[0].Kind != value.KInt || args[1].Kind != value.KInt {
				return value.Value{}, evalArgErr(name, args, "expected two int arguments")
			}
			return value.Int_(fn(args[0].Int, args[1].Int)), nil
		},
		Bounds: bounds,
	}
}

// GetLinqDSL builds the "linq" catalogue (spec §4.B): REVERSE, SORT,
// TAKE, DROP, ACCESS, COUNT, TAIL, HEAD, LAST, MINIMUM, MAXIMUM, LEN,
// SUM over sequences, plus unary/binary scalar lambdas and the
// MAP/FILTER/COUNT/ZIPWITH/SCANL1 higher-order forms generated once
// per compatible lambda. Null is the integer sentinel (= maxBound)
// returned by operations that inspect an empty or out-of-range
// sequence.
func GetLinqDSL(maxBound int) (*Language, []*Function) {
	null := maxBound

	lambdas := []*Function{
		scalarLambda("IDT", func(i int) int { return i }, func(lo, hi, l int) [][2]int {
			return [][2]int{{lo, hi}}
		}),
		scalarLambda("INC", func(i int) int { return i + 1 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{lo, hi - 1}}
		}),
		scalarLambda("DEC", func(i int) int { return i - 1 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{lo + 1, hi}}
		}),
		scalarLambda("SHL", func(i int) int { return i * 2 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{floorDiv(lo+1, 2), floorDiv(hi, 2)}}
		}),
		scalarLambda("SHR", func(i int) int { return i / 2 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{2 * lo, 2 * hi}}
		}),
		scalarLambda("doNEG", func(i int) int { return -i }, func(lo, hi, l int) [][2]int {
			return [][2]int{{-hi + 1, -lo + 1}}
		}),
		scalarLambda("MUL3", func(i int) int { return i * 3 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{floorDiv(lo+2, 3), floorDiv(hi, 3)}}
		}),
		scalarLambda("DIV3", func(i int) int { return i / 3 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{lo, hi}}
		}),
		scalarLambda("MUL4", func(i int) int { return i * 4 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{floorDiv(lo+3, 4), floorDiv(hi, 4)}}
		}),
		scalarLambda("DIV4", func(i int) int { return i / 4 }, func(lo, hi, l int) [][2]int {
			return [][2]int{{lo, hi}}
		}),
		scalarLambda("SQR", func(i int) int { return i * i }, func(lo, hi, l int) [][2]int {
			slo, shi := sqrBounds(lo, hi)
			return [][2]int{{slo, shi}}
		}),
		predicateLambda("isPOS", func(i int) bool { return i > 0 }),
		predicateLambda("isNEG", func(i int) bool { return i < 0 }),
		predicateLambda("isODD", func(i int) bool { return i%2 == 1 || i%2 == -1 }),
		predicateLambda("isEVEN", func(i int) bool { return i%2 == 0 }),
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
		binaryLambda("MIN", func(i, j int) int { return min(i, j) }, func(lo, hi, l int) [][2]int {
			return [][2]int{{lo, hi}, {lo, hi}}
		}),
		binaryLambda("MAX", func(i, j int) int { return max(i, j) }, func(lo, hi, l int) [][2]int {
			return [][2]int{{lo, hi}, {lo, hi}}
		}),
	}

	seqFns := []*Function{
		{
			Name: "REVERSE",
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
			Name: "SORT",
			Sig:  []value.Type{value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := value.CopySeq(args[0].Seq)
				sortInts(xs)
				return value.Seq_(xs), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "TAKE",
			Sig:  []value.Type{value.TInt, value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				n, xs := args[0].Int, args[1].Seq
				if n < 0 {
					n = 0
				}
				if n > len(xs) {
					n = len(xs)
				}
				return value.Seq_(value.CopySeq(xs[:n])), nil
			},
			Bounds: countIndexBounds,
		},
		{
			Name: "DROP",
			Sig:  []value.Type{value.TInt, value.TSeq, value.TSeq},
			Eval: func(args []value.Value) (value.Value, error) {
				n, xs := args[0].Int, args[1].Seq
				if n < 0 {
					n = 0
				}
				if n > len(xs) {
					n = len(xs)
				}
				return value.Seq_(value.CopySeq(xs[n:])), nil
			},
			Bounds: countIndexBounds,
		},
		{
			Name: "ACCESS",
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
		{
			Name: "COUNT",
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
			Name: "TAIL",
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
			Name: "HEAD",
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
			Name: "LAST",
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
			Name: "MINIMUM",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := args[0].Seq
				if len(xs) == 0 {
					return value.Int_(null), nil
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
			Name: "LEN",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				return value.Int_(len(args[0].Seq)), nil
			},
			Bounds: func(lo, hi, l int) [][2]int { return [][2]int{{lo, hi}} },
		},
		{
			Name: "MAXIMUM",
			Sig:  []value.Type{value.TSeq, value.TInt},
			Eval: func(args []value.Value) (value.Value, error) {
				xs := args[0].Seq
				if len(xs) == 0 {
					return value.Int_(null), nil
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
			Name: "SUM",
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
	}

	var higherOrder []*Function
	for _, l := range lambdas {
		if len(l.Sig) == 2 && l.Sig[0] == value.TInt && l.Sig[1] == value.TInt {
			l := l
			higherOrder = append(higherOrder, &Function{
				Name: "MAP " + l.Name,
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
	for _, l := range lambdas {
		if len(l.Sig) == 2 && l.Sig[0] == value.TInt && l.Sig[1] == value.TBool {
			l := l
			higherOrder = append(higherOrder, &Function{
				Name: "FILTER " + l.Name,
				Sig:  []value.Type{value.TSeq, value.TSeq},
				Eval: func(args []value.Value) (value.Value, error) {
					var out []int
					for _, x := range args[0].Seq {
						v, err := l.Eval([]value.Value{value.Int_(x)})
						if err != nil {
							return value.Value{}, err
						}
						if v.Bool {
							out = append(out, x)
						}
					}
					return value.Seq_(out), nil
				},
				Bounds: func(lo, hi, ln int) [][2]int { return [][2]int{{lo, hi}} },
			})
			higherOrder = append(higherOrder, &Function{
				Name: "COUNT " + l.Name,
				Sig:  []value.Type{value.TSeq, value.TInt},
				Eval: func(args []value.Value) (value.Value, error) {
					c := 0
					for _, x := range args[0].Seq {
						v, err := l.Eval([]value.Value{value.Int_(x)})
						if err != nil {
							return value.Value{}, err
						}
						if v.Bool {
							c++
						}
					}
					return value.Int_(c), nil
				},
				Bounds: func(lo, hi, ln int) [][2]int { return [][2]int{{-maxBound, maxBound}} },
			})
		}
	}
	for _, l := range lambdas {
		if len(l.Sig) == 3 && l.Sig[0] == value.TInt && l.Sig[1] == value.TInt && l.Sig[2] == value.TInt {
			l := l
			higherOrder = append(higherOrder, &Function{
				Name: "ZIPWITH " + l.Name,
				Sig:  []value.Type{value.TSeq, value.TSeq, value.TSeq},
				Eval: func(args []value.Value) (value.Value, error) {
					xs, ys := args[0].Seq, args[1].Seq
					n := len(xs)
					if len(ys) < n {
						n = len(ys)
					}
					out := make([]int, n)
					for i := 0; i < n; i++ {
						v, err := l.Eval([]value.Value{value.Int_(xs[i]), value.Int_(ys[i])})
						if err != nil {
							return value.Value{}, err
						}
						out[i] = v.Int
					}
					return value.Seq_(out), nil
				},
				Bounds: func(lo, hi, ln int) [][2]int {
					b := l.Bounds(lo, hi, ln)
					return [][2]int{b[0], b[0]}
				},
			})
			higherOrder = append(higherOrder, &Function{
				Name: "SCANL1 " + l.Name,
				Sig:  []value.Type{value.TSeq, value.TSeq},
				Eval: func(args []value.Value) (value.Value, error) {
					fn := func(a, b int) int {
						v, _ := l.Eval([]value.Value{value.Int_(a), value.Int_(b)})
						return v.Int
					}
					return value.Seq_(scanl1Eval(fn, args[0].Seq)), nil
				},
				Bounds: func(lo, hi, ln int) [][2]int {
					return scanl1Bounds(l.Name, lo, hi, ln)
				},
			})
		}
	}

	all := append(append([]*Function{}, seqFns...), higherOrder...)
	return NewLanguage(all), lambdas
}
