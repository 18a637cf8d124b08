// Package generator drives the sampling loop (spec.md §4.G): compile a
// task's source, repeatedly draw biased inputs and evaluate them,
// prune and test for interestingness, and stop on success or timeout.
package generator

// Config mirrors the CLI flags (spec.md §6), plus MinIOLen, which has
// no flag and is set only through kwargs; per-task kwargs override
// any of these fields except Language and Seed before a task runs.
type Config struct {
	NumExamples int
	Timeout     float64 // seconds
	MinBound    int
	MaxBound    int
	MinVariance float64
	MaxV        int // L: sequence-element range cap and list-length bound parameter
	MaxIOLen    int
	MinIOLen    int // restored from the reference; sequence-length floor for draw_seq
	Language    string
	Seed        int64
}

// DefaultConfig matches the Python CLI's own defaults exactly.
func DefaultConfig() Config {
	return Config{
		NumExamples: 10,
		Timeout:     10,
		MinBound:    0,
		MaxBound:    99,
		MinVariance: 3.5,
		MaxV:        99,
		MaxIOLen:    10,
		MinIOLen:    1,
		Language:    "extended",
		Seed:        1,
	}
}

// Task is one program to run through the generation driver. Language
// is a per-task catalogue override (e.g. a demo task exercising the
// linq catalogue alongside others that use the default); empty means
// "use the batch's configured Config.Language" like the reference.
type Task struct {
	Source   string
	Kwargs   map[string]float64
	Language string
	Skip     bool
}

// Resolve applies Kwargs and any Language override on top of base,
// matching generate_examples' per-task override behavior in the
// reference.
func (t Task) Resolve(base Config) Config {
	cfg := base
	if t.Language != "" {
		cfg.Language = t.Language
	}
	for k, v := range t.Kwargs {
		switch k {
		case "num_examples":
			cfg.NumExamples = int(v)
		case "timeout":
			cfg.Timeout = v
		case "min_bound":
			cfg.MinBound = int(v)
		case "max_bound":
			cfg.MaxBound = int(v)
		case "min_variance":
			cfg.MinVariance = v
		case "maxv":
			cfg.MaxV = int(v)
		case "max_io_len":
			cfg.MaxIOLen = int(v)
		case "min_io_len":
			cfg.MinIOLen = int(v)
		}
	}
	return cfg
}
