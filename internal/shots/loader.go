package shots

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names of a shot table file.
const (
	ColSource   = "source"
	ColHeadline = "headline"
	ColSubtitle = "subtitle"
	ColOutput   = "output"
)

// LoadTable reads a CSV shot table. The first row is a header naming the
// columns; column order is free and unknown columns are ignored.
func LoadTable(path string) ([]Spec, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range []string{ColSource, ColOutput} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("csv %s: missing %q column", path, name)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Spec{}
	for _, row := range rows[1:] {
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}
		out = append(out, Spec{
			Source:   get(row, ColSource),
			Headline: get(row, ColHeadline),
			Subtitle: get(row, ColSubtitle),
			Output:   get(row, ColOutput),
		})
	}
	if err := Validate(out); err != nil {
		return nil, fmt.Errorf("csv %s: %w", path, err)
	}
	return out, nil
}

// Validate checks that every spec names an input and an output and that no
// two specs write the same file.
func Validate(specs []Spec) error {
	if len(specs) == 0 {
		return fmt.Errorf("no screenshots defined")
	}
	seen := map[string]int{}
	for i, s := range specs {
		if s.Source == "" {
			return fmt.Errorf("screenshot %d: source is empty", i+1)
		}
		if s.Output == "" {
			return fmt.Errorf("screenshot %d (%s): output is empty", i+1, s.Source)
		}
		if prev, ok := seen[s.Output]; ok {
			return fmt.Errorf("screenshot %d: output %s already used by screenshot %d", i+1, s.Output, prev)
		}
		seen[s.Output] = i + 1
	}
	return nil
}
