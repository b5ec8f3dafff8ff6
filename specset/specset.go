// Package specset loads token spec lists from YAML files, and provides
// the built-in predefined pattern set the original program's
// "Load Predefined Patterns" menu item installed.
package specset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/lexgen/automaton"
)

type document struct {
	Tokens []entry `yaml:"tokens"`
}

type entry struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
}

// Load reads a YAML document of the form
//
//	tokens:
//	  - name: KEYWORD_IF
//	    pattern: "if"
//	  - name: IDENTIFIER
//	    pattern: "(a|b|...|z)(a|b|...|z|0|...|9)*"
//
// and returns its token specs in declaration order — list order, not map
// order, which is the fix for the ordering hazard the original program's
// map-backed pattern store has (SPEC_FULL.md §4.8).
func Load(path string) ([]automaton.TokenSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load specs: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load specs: %w", err)
	}

	specs := make([]automaton.TokenSpec, len(doc.Tokens))
	for i, e := range doc.Tokens {
		specs[i] = automaton.TokenSpec{Name: e.Name, Pattern: e.Pattern}
	}
	return specs, nil
}
