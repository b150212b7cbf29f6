package dia

import (
	"fmt"
	"io"
	"os"
)

// NewGraph returns the plain graphical diagram, the one shielded by
// [GraphProxy].
func NewGraph() *Graph {
	return &Graph{out: os.Stdout}
}

type Graph struct {
	out io.Writer
}

func (g *Graph) SetOutput(w io.Writer) { g.out = w }

func (g *Graph) Calc() { fmt.Fprintln(g.out, "Calculating Graph") }
func (g *Graph) Draw() { fmt.Fprintln(g.out, "[Graph] Drawing graphical representation.") }
func (g *Graph) Drag() { fmt.Fprintln(g.out, "Dragging Graph") }

// NewFigure returns the plain textual diagram.
func NewFigure() *Figure {
	return &Figure{out: os.Stdout}
}

type Figure struct {
	out io.Writer
}

func (f *Figure) SetOutput(w io.Writer) { f.out = w }

func (f *Figure) Calc() { fmt.Fprintln(f.out, "Calculating Figure") }
func (f *Figure) Draw() { fmt.Fprintln(f.out, "[Figure Stub] Drawing textual stub.") }
func (f *Figure) Drag() { fmt.Fprintln(f.out, "Dragging Figure") }
