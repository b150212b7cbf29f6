// Package diatest provides test types
package diatest

// Called records invoked diagram operations.
type Called struct {
	Calls []string
}

func (c *Called) Calc() { c.Calls = append(c.Calls, "Calc") }
func (c *Called) Draw() { c.Calls = append(c.Calls, "Draw") }
func (c *Called) Drag() { c.Calls = append(c.Calls, "Drag") }
