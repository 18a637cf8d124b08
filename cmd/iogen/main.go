package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"iogen/internal/generator"
	"iogen/internal/ioerrors"
	"iogen/internal/present"
)

func main() {
	cfg := generator.DefaultConfig()

	var (
		stdin      bool
		fromJSON   []string
		fromTxt    []string
		jsonOut    bool
		toJSONPath string
	)

	rootCmd := &cobra.Command{
		Use:   "iogen",
		Short: "Generate interesting I/O examples for register-DSL programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := 0
			if stdin {
				sources++
			}
			if len(fromJSON) > 0 {
				sources++
			}
			if len(fromTxt) > 0 {
				sources++
			}
			if sources > 1 {
				return errors.New("--stdin, --from-json and --from-txt are mutually exclusive")
			}

			tasks, err := loadTasks(stdin, fromJSON, fromTxt)
			if err != nil {
				return err
			}

			results, err := runTasks(tasks, cfg)
			if err != nil {
				return err
			}

			if jsonOut || toJSONPath != "" {
				data, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return err
				}
				if toJSONPath != "" {
					if err := os.WriteFile(toJSONPath, data, 0o644); err != nil {
						return err
					}
				}
				if jsonOut {
					fmt.Println(string(data))
				}
				return nil
			}

			for _, r := range results {
				present.Result(os.Stdout, r)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&cfg.NumExamples, "num-examples", "n", cfg.NumExamples, "number of examples per batch")
	flags.Float64Var(&cfg.Timeout, "timeout", cfg.Timeout, "wall-clock budget per task, in seconds")
	flags.IntVar(&cfg.MinBound, "min-bound", cfg.MinBound, "minimum register value")
	flags.IntVar(&cfg.MaxBound, "max-bound", cfg.MaxBound, "maximum register value")
	flags.Float64Var(&cfg.MinVariance, "min-variance", cfg.MinVariance, "minimum output variance to accept a batch")
	flags.IntVar(&cfg.MaxV, "maxv", cfg.MaxV, "sequence-element range cap (L)")
	flags.IntVar(&cfg.MaxIOLen, "max-io-len", cfg.MaxIOLen, "maximum sampled sequence length")
	flags.StringVar(&cfg.Language, "language", cfg.Language, "DSL catalogue: simple, extended, or linq")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flags.BoolVar(&stdin, "stdin", false, "read tasks from stdin")
	flags.StringSliceVar(&fromJSON, "from-json", nil, "read tasks from JSON file(s)")
	flags.StringSliceVar(&fromTxt, "from-txt", nil, "read tasks from newline-delimited text file(s)")
	flags.BoolVar(&jsonOut, "json", false, "print results as JSON")
	flags.StringVar(&toJSONPath, "to-json", "", "write results as JSON to this path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadTasks(stdin bool, fromJSON, fromTxt []string) ([]generator.Task, error) {
	switch {
	case stdin:
		return generator.ReadStdin(os.Stdin)
	case len(fromJSON) > 0:
		var all []generator.Task
		for _, path := range fromJSON {
			t, err := generator.ReadJSONFile(path)
			if err != nil {
				return nil, err
			}
			all = append(all, t...)
		}
		return all, nil
	case len(fromTxt) > 0:
		var all []generator.Task
		for _, path := range fromTxt {
			t, err := generator.ReadTxtFile(path)
			if err != nil {
				return nil, err
			}
			all = append(all, t...)
		}
		return all, nil
	default:
		return generator.DefaultTasks(), nil
	}
}

// runTasks runs independent tasks concurrently (spec.md §5: "tasks are
// independent and may be parallelised by the driver shell trivially").
// A PropagationError drops its task with a warning, matching the
// reference's own "WARN: ..." behavior; any other error is fatal.
func runTasks(tasks []generator.Task, base generator.Config) ([]*generator.Result, error) {
	results := make([]*generator.Result, len(tasks))

	g := new(errgroup.Group)
	g.SetLimit(8)

	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			r, err := generator.RunTask(t.Source, t.Resolve(base))
			if err != nil {
				var propErr *ioerrors.PropagationError
				if errors.As(err, &propErr) {
					log.Printf("WARN: task %q dropped: %v", t.Source, propErr)
					return nil
				}
				return fmt.Errorf("task %q: %w", t.Source, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := make([]*generator.Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
