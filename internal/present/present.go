// Package present renders result records for humans, the non-JSON
// counterpart to cmd/iogen's --json output. It leans on
// go-humanize for the numbers a human actually wants formatted —
// sample counts with thousands separators, elapsed time as a duration —
// rather than the bare fmt.Printf the reference CLI uses.
package present

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"iogen/internal/generator"
	"iogen/internal/value"
)

// Result prints one task's outcome to w in the teacher's plain
// fmt.Fprintf style.
func Result(w io.Writer, r *generator.Result) {
	fmt.Fprintf(w, "program: %s\n", r.Program)
	fmt.Fprintf(w, "  samples drawn: %s\n", humanize.Comma(int64(r.Samples)))
	fmt.Fprintf(w, "  pairs kept:    %d\n", len(r.IOPairs))
	fmt.Fprintf(w, "  variance:      %.4f\n", r.OutputVariance)
	fmt.Fprintf(w, "  elapsed:       %ss\n", humanize.Ftoa(r.RuntimeSeconds))
	if r.HitTimeout {
		fmt.Fprintf(w, "  WARN: hit %ss timeout before reaching target variance\n", humanize.Ftoa(r.Timeout))
	}
	for _, p := range r.IOPairs {
		fmt.Fprintf(w, "    %s -> %s\n", formatInputs(p.Input), p.Output.String())
	}
}

func formatInputs(inputs []value.Value) string {
	s := "("
	for i, v := range inputs {
		if i > 0 {
			s += ", "
		}
		s += v.String()
	}
	return s + ")"
}
