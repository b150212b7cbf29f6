package dia

import (
	"bytes"
	"testing"

	"github.com/gregoryv/golden"
)

func TestGraph(t *testing.T) {
	g := NewGraph()
	var buf bytes.Buffer
	g.SetOutput(&buf)
	g.Calc()
	g.Draw()
	g.Drag()
	golden.Assert(t, buf.String())
}

func TestFigure(t *testing.T) {
	f := NewFigure()
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.Calc()
	f.Draw()
	f.Drag()
	golden.Assert(t, buf.String())
}
