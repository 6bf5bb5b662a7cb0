// Package catalog exposes the static description of every calculator: its
// input fields, result fields and presentation formats. The data is compiled
// into the binary from calculators.yaml.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"fincalc/domain"
)

//go:embed calculators.yaml
var calculatorsYAML []byte

type FieldType string

const (
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldDate     FieldType = "date"
)

type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Field describes one input of a calculator form.
type Field struct {
	Name     string    `yaml:"name" json:"name"`
	Label    string    `yaml:"label" json:"label"`
	Type     FieldType `yaml:"type" json:"type"`
	Default  any       `yaml:"default,omitempty" json:"default,omitempty"`
	Min      *float64  `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *float64  `yaml:"max,omitempty" json:"max,omitempty"`
	Step     *float64  `yaml:"step,omitempty" json:"step,omitempty"`
	Prefix   string    `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix   string    `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Help     string    `yaml:"help,omitempty" json:"helpText,omitempty"`
	Optional bool      `yaml:"optional,omitempty" json:"optional,omitempty"`
	Options  []Option  `yaml:"options,omitempty" json:"options,omitempty"`
}

// ResultField describes how one result value is labelled and formatted.
type ResultField struct {
	Key       string            `yaml:"key" json:"key"`
	Label     string            `yaml:"label" json:"label"`
	Format    domain.FormatKind `yaml:"format" json:"format"`
	Primary   bool              `yaml:"primary,omitempty" json:"primary,omitempty"`
	Highlight bool              `yaml:"highlight,omitempty" json:"highlight,omitempty"`
	Suffix    string            `yaml:"suffix,omitempty" json:"suffix,omitempty"`
}

type Calculator struct {
	ID          domain.CalculatorType `yaml:"id" json:"id"`
	Name        string                `yaml:"name" json:"name"`
	Description string                `yaml:"description" json:"description"`
	Category    string                `yaml:"category" json:"category"`
	Icon        string                `yaml:"icon" json:"icon"`
	Fields      []Field               `yaml:"fields" json:"fields"`
	Results     []ResultField         `yaml:"results" json:"resultFields"`
}

// Field returns the input field called name.
func (c Calculator) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

type document struct {
	Calculators []Calculator `yaml:"calculators"`
}

var (
	calculators []Calculator
	byID        map[domain.CalculatorType]int
)

func init() {
	list, err := parse(calculatorsYAML)
	if err != nil {
		panic(err)
	}
	calculators = list
	byID = make(map[domain.CalculatorType]int, len(list))
	for i, c := range list {
		byID[c.ID] = i
	}
}

func parse(data []byte) ([]Calculator, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse calculator catalog: %w", err)
	}

	seen := make(map[domain.CalculatorType]bool, len(doc.Calculators))
	for _, c := range doc.Calculators {
		if c.ID == "" {
			return nil, fmt.Errorf("calculator %q has no id", c.Name)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate calculator id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return doc.Calculators, nil
}

// All returns every calculator in catalog order.
func All() []Calculator {
	out := make([]Calculator, len(calculators))
	copy(out, calculators)
	return out
}

// Get looks up a calculator by id.
func Get(id domain.CalculatorType) (Calculator, bool) {
	i, ok := byID[id]
	if !ok {
		return Calculator{}, false
	}
	return calculators[i], true
}

// Categories returns category names in the order they first appear.
func Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range calculators {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out
}

// ByCategory groups calculators by category, keeping catalog order within
// each group.
func ByCategory() map[string][]Calculator {
	out := make(map[string][]Calculator)
	for _, c := range calculators {
		out[c.Category] = append(out[c.Category], c)
	}
	return out
}

// Search returns the calculators whose id, name, description, category or
// field labels contain term, ignoring case. A blank term matches everything.
func Search(term string) []Calculator {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return All()
	}

	var out []Calculator
	for _, c := range calculators {
		if matches(c, term) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c Calculator, term string) bool {
	for _, s := range []string{string(c.ID), c.Name, c.Description, c.Category} {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	for _, f := range c.Fields {
		if strings.Contains(strings.ToLower(f.Label), term) {
			return true
		}
	}
	return false
}
