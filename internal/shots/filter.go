package shots

import (
	"path/filepath"
	"strings"
)

// Select keeps the specs whose source or output matches one of names,
// preserving order. Names may omit the extension. An empty names list
// selects everything.
func Select(specs []Spec, names []string) []Spec {
	if len(names) == 0 {
		return specs
	}
	var out []Spec
	for _, s := range specs {
		for _, n := range names {
			if matches(s.Source, n) || matches(s.Output, n) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func matches(file, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if strings.EqualFold(file, name) {
		return true
	}
	return strings.EqualFold(strings.TrimSuffix(file, filepath.Ext(file)), name)
}
