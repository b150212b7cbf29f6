/*
Package script provides YAML scenarios for driving a diagram factory.

A scenario is a named sequence of steps where each step selects a
diagram element, a type and a coordinate label.

	name: trend
	steps:
	  - element: Graph
	    type: Line
	    coord: (1,2)
*/
package script

import (
	"fmt"
	"os"

	"github.com/gregoryv/dia"
	"gopkg.in/yaml.v3"
)

// Load reads a scenario from the given YAML file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes a scenario from YAML data.
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("script.Parse: %w", err)
	}
	return &s, nil
}

type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Element string `yaml:"element"`
	Type    string `yaml:"type"`
	Coord   string `yaml:"coord"`
}

// Play runs each step against the given factory, stopping at the
// first failing step.
func (s *Scenario) Play(f *dia.DiagramFactory) error {
	for i, step := range s.Steps {
		if err := f.Diagram(step.Element, step.Type, step.Coord); err != nil {
			return fmt.Errorf("step %v: %w", i+1, err)
		}
	}
	return nil
}

// Demo returns the built in demonstration scenario covering both
// graph variants and both figure variants.
func Demo() *Scenario {
	return &Scenario{
		Name: "demo",
		Steps: []Step{
			{Element: "Graph", Type: "Line", Coord: "(10,20)"},
			{Element: "Graph", Type: "Bar", Coord: "(15,30)"},
			{Element: "Figure", Type: "CircleColor", Coord: "(5,5)"},
			{Element: "Figure", Type: "SquareBW", Coord: "(2,3)"},
		},
	}
}
