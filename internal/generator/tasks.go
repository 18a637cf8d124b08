package generator

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// taskJSON mirrors the wire shape of one task descriptor (spec.md §6).
type taskJSON struct {
	Source   string             `json:"source"`
	Kwargs   map[string]float64 `json:"kwargs,omitempty"`
	Language string             `json:"language,omitempty"`
	Skip     bool               `json:"skip,omitempty"`
}

func fromJSON(raw []taskJSON) []Task {
	tasks := make([]Task, 0, len(raw))
	for _, r := range raw {
		if r.Skip {
			continue
		}
		tasks = append(tasks, Task{Source: r.Source, Kwargs: r.Kwargs, Language: r.Language})
	}
	return tasks
}

// ReadJSON parses a task-descriptor array from r, dropping any record
// with "skip": true before it ever reaches the driver.
func ReadJSON(r io.Reader) ([]Task, error) {
	var raw []taskJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return fromJSON(raw), nil
}

// ReadJSONFile opens path and delegates to ReadJSON.
func ReadJSONFile(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadTxt parses one task per non-blank line, each line a program
// source using " | " register separators.
func ReadTxt(r io.Reader) ([]Task, error) {
	var tasks []Task
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tasks = append(tasks, Task{Source: line})
	}
	return tasks, scanner.Err()
}

// ReadTxtFile opens path and delegates to ReadTxt.
func ReadTxtFile(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTxt(f)
}

// ReadStdin reads task sources from stdin, one JSON array if the first
// non-whitespace byte is '[', otherwise falling back to the txt format
// (one program per line).
func ReadStdin(r io.Reader) ([]Task, error) {
	br := bufio.NewReader(r)
	for {
		peek, err := br.Peek(1)
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(peek) == 0 {
			break
		}
		switch peek[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
			continue
		case '[':
			return ReadJSON(br)
		}
		break
	}
	return ReadTxt(br)
}

// DefaultTasks reproduces the fixed ten-program demo batch the
// reference CLI runs when no --stdin/--from-json/--from-txt source is
// given.
func DefaultTasks() []Task {
	return []Task{
		{Source: "a <- [int] | b <- head a"},
		{Source: "a <- [int] | b <- tail a"},
		{Source: "a <- [int] | b <- tail a | c <- head a | d <- count c b"},
		{Source: "a <- [int] | b <- sum a", Kwargs: map[string]float64{"max_bound": 99, "maxv": 10}},
		{Source: "a <- [int] | b <- int | c <- last a | d <- + b c"},
		{Source: "a <- int | b <- [int] | c <- SORT b | d <- TAKE a c | e <- SUM d",
			Kwargs: map[string]float64{"max_bound": 512}, Language: "linq"},
		{Source: "a <- [int] | b <- reverse a"},
		{Source: "a <- [int] | b <- sort a"},
		{Source: "a <- [int] | b <- filter even? a"},
		{Source: "a <- [int] | b <- int | c <- filter < b a"},
	}
}
