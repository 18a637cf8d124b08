// Package executor evaluates a compiled register program on one input
// tuple: a register vector, inputs at the front, each later slot
// filled by calling its function's evaluator over earlier registers.
package executor

import (
	"iogen/internal/compiler"
	"iogen/internal/value"
)

// Run evaluates prog over inputs (one value per prog.InputTypes entry,
// in order) and returns the final register's value. An evaluator fault
// is fatal for the calling task, matching spec.md's error policy — it
// should be unreachable when inputs respect the compiled bounds.
func Run(prog *compiler.Program, inputs []value.Value) (value.Value, error) {
	regs := make([]value.Value, len(prog.Registers))
	copy(regs, inputs)

	for t := len(inputs); t < len(prog.Registers); t++ {
		r := prog.Registers[t]
		args := make([]value.Value, len(r.Pointers))
		for i, p := range r.Pointers {
			args[i] = regs[p]
		}
		v, err := r.Func.Eval(args)
		if err != nil {
			return value.Value{}, err
		}
		regs[t] = v
	}
	return regs[len(regs)-1], nil
}
