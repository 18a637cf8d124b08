package generator

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"iogen/internal/compiler"
	"iogen/internal/dsl"
	"iogen/internal/executor"
	"iogen/internal/interesting"
	"iogen/internal/ioerrors"
	"iogen/internal/sampler"
	"iogen/internal/value"
)

// Result is the JSON-serializable outcome of one task (spec.md §6).
type Result struct {
	TaskID         string          `json:"task_id"`
	Program        string          `json:"program"`
	IOPairs        []IOPairJSON    `json:"io_pairs"`
	OutputVariance float64         `json:"output_variance"`
	RuntimeSeconds float64         `json:"runtime_seconds"`
	Timeout        float64         `json:"timeout"`
	HitTimeout     bool            `json:"hit_timeout"`
	Samples        int             `json:"samples"`
}

// IOPairJSON is the wire shape of one kept observation.
type IOPairJSON struct {
	Input  []value.Value `json:"i"`
	Output value.Value   `json:"o"`
}

func languageFor(name string, maxBound int) (*dsl.Language, error) {
	switch name {
	case "simple":
		return dsl.GetSimpleDSL(maxBound), nil
	case "extended":
		return dsl.GetExtendedDSL(maxBound), nil
	case "linq":
		lang, _ := dsl.GetLinqDSL(maxBound)
		return lang, nil
	default:
		return nil, ioerrors.NewParseError(0, name, "unknown language catalogue")
	}
}

// RunTask compiles and runs one task to completion, matching the
// state machine in spec.md §4.G. A compile failure (ParseError or
// PropagationError) is returned directly; the caller decides whether
// to drop the task or surface it.
func RunTask(source string, cfg Config) (*Result, error) {
	normalized := strings.Join(normalizeLines(source), "\n")

	lang, err := languageFor(cfg.Language, cfg.MaxBound)
	if err != nil {
		return nil, err
	}

	prog, err := compiler.Compile(normalized, compiler.Options{
		Lang:                lang,
		MinBound:            cfg.MinBound,
		MaxBound:            cfg.MaxBound,
		MaxListLen:          cfg.MaxV,
		MinInputRangeLength: 0,
	})
	if err != nil {
		return nil, err
	}

	samp := sampler.New(cfg.Seed)
	start := time.Now()
	deadline := time.Duration(cfg.Timeout * float64(time.Second))

	var pairs []interesting.Pair
	samples := 0
	hitTimeout := false

	for {
		for i := 0; i < cfg.NumExamples; i++ {
			inputs := drawInputs(samp, prog, cfg)
			samples++
			out, err := executor.Run(prog, inputs)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, interesting.Pair{Input: inputs, Output: out})
		}
		pairs = interesting.Reduce(pairs, cfg.NumExamples)

		if interesting.IsInteresting(pairs, cfg.MinVariance) {
			break
		}
		if time.Since(start) >= deadline {
			hitTimeout = true
			break
		}
	}

	variance, _ := interesting.Variance(pairs)
	ioPairs := make([]IOPairJSON, len(pairs))
	for i, p := range pairs {
		ioPairs[i] = IOPairJSON{Input: p.Input, Output: p.Output}
	}

	return &Result{
		TaskID:         uuid.New().String(),
		Program:        strings.Join(normalizeLines(source), " | "),
		IOPairs:        ioPairs,
		OutputVariance: variance,
		RuntimeSeconds: time.Since(start).Seconds(),
		Timeout:        cfg.Timeout,
		HitTimeout:     hitTimeout,
		Samples:        samples,
	}, nil
}

func normalizeLines(source string) []string {
	normalized := strings.ReplaceAll(source, " | ", "\n")
	raw := strings.Split(normalized, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func drawInputs(samp *sampler.Sampler, prog *compiler.Program, cfg Config) []value.Value {
	inputs := make([]value.Value, len(prog.InputTypes))
	for i, t := range prog.InputTypes {
		lo, hi := prog.InputBounds[i][0], prog.InputBounds[i][1]
		switch t {
		case value.TInt:
			inputs[i] = value.Int_(samp.DrawInt(lo, hi+1))
		case value.TSeq:
			n := samp.DrawLen(cfg.MinIOLen, cfg.MaxIOLen)
			inputs[i] = value.Seq_(samp.DrawSeq(lo, hi+1, n))
		}
	}
	return inputs
}
