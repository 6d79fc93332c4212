// Package config loads host-supplied catalog extensions and keyword
// overrides from YAML files.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/textform/pkg/textform/catalog"
	"github.com/cognicore/textform/pkg/textform/internalerr"
)

// PatternsFile is the YAML shape for custom pattern definitions.
type PatternsFile struct {
	Patterns []PatternSpec `yaml:"patterns"`
}

// PatternSpec is one uncompiled pattern definition.
type PatternSpec struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Expr        string            `yaml:"expr"`
	Weight      float64           `yaml:"weight"`
	Category    string            `yaml:"category"`
	Formats     []string          `yaml:"formats"`
	Extract     map[string]string `yaml:"extract"`
}

// LoadPatterns reads and compiles custom pattern definitions. Unlike
// the built-in catalog, a bad expression here is an input error, not a
// panic: hosts hand-edit these files.
func LoadPatterns(path string) ([]catalog.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file PatternsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse patterns file: %w", err)
	}

	defs := make([]catalog.Definition, 0, len(file.Patterns))
	for _, spec := range file.Patterns {
		def, err := compileSpec(spec)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func compileSpec(spec PatternSpec) (catalog.Definition, error) {
	if spec.ID == "" || spec.Expr == "" {
		return catalog.Definition{}, fmt.Errorf("pattern %q: %w: id and expr are required",
			spec.ID, internalerr.ErrInvalidConfig)
	}
	if spec.Weight < 0 || spec.Weight > 1 {
		return catalog.Definition{}, fmt.Errorf("pattern %q: %w: weight %f out of [0,1]",
			spec.ID, internalerr.ErrInvalidConfig, spec.Weight)
	}

	expr, err := regexp.Compile(spec.Expr)
	if err != nil {
		return catalog.Definition{}, fmt.Errorf("pattern %q: %w: %v",
			spec.ID, internalerr.ErrInvalidPattern, err)
	}

	formats := make([]catalog.Format, 0, len(spec.Formats))
	for _, f := range spec.Formats {
		parsed, ok := catalog.ParseFormat(f)
		if !ok {
			return catalog.Definition{}, fmt.Errorf("pattern %q: %w: unknown format %q",
				spec.ID, internalerr.ErrInvalidConfig, f)
		}
		formats = append(formats, parsed)
	}
	if len(formats) == 0 {
		return catalog.Definition{}, fmt.Errorf("pattern %q: %w: at least one format required",
			spec.ID, internalerr.ErrInvalidConfig)
	}

	var extract map[string]catalog.FieldType
	if len(spec.Extract) > 0 {
		extract = make(map[string]catalog.FieldType, len(spec.Extract))
		for group, t := range spec.Extract {
			extract[group] = catalog.FieldType(t)
		}
	}

	return catalog.Definition{
		ID:          spec.ID,
		Name:        spec.Name,
		Description: spec.Description,
		Expr:        expr,
		Weight:      spec.Weight,
		Category:    catalog.Category(spec.Category),
		Formats:     formats,
		Extract:     extract,
	}, nil
}

// KeywordsFile is the YAML shape for keyword-list overrides, keyed by
// output format.
type KeywordsFile struct {
	Keywords map[string][]string `yaml:"keywords"`
}

// LoadKeywords reads per-format keyword overrides. Unknown format keys
// are rejected so typos surface at load time.
func LoadKeywords(path string) (map[catalog.Format][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file KeywordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keywords file: %w", err)
	}

	out := make(map[catalog.Format][]string, len(file.Keywords))
	for name, words := range file.Keywords {
		f, ok := catalog.ParseFormat(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown format %q", internalerr.ErrInvalidConfig, name)
		}
		out[f] = words
	}
	return out, nil
}
