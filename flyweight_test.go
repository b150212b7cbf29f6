package dia

import (
	"bytes"
	"testing"
)

func TestFigurePool_variants(t *testing.T) {
	p := NewFigurePool()
	cases := []struct {
		key     string
		colored bool
	}{
		{"CircleColor", true},
		{"ColorTriangle", true},
		{"SquareBW", false},
		{"Dot", false},
		{"", false},
	}
	for _, c := range cases {
		f := p.Figure(c.key)
		_, colored := f.(*ColoredFigure)
		if colored != c.colored {
			t.Errorf("%q: colored = %v", c.key, colored)
		}
		if f.Key() != c.key {
			t.Errorf("key %q != %q", f.Key(), c.key)
		}
	}
}

func TestFigurePool_identity(t *testing.T) {
	p := NewFigurePool()
	a := p.Figure("CircleColor")
	b := p.Figure("CircleColor")
	if a != b {
		t.Error("same key returned different instances")
	}
	if a.ID() != b.ID() {
		t.Error("ids differ:", a.ID(), b.ID())
	}
	c := p.Figure("Square")
	if c.ID() == a.ID() {
		t.Error("distinct keys share id", c.ID())
	}
	if v := p.Len(); v != 2 {
		t.Error("pool len", v)
	}
}

func TestFigurePool_SetOutput(t *testing.T) {
	p := NewFigurePool()
	cached := p.Figure("SquareBW")

	var buf bytes.Buffer
	p.SetOutput(&buf)
	cached.Draw()
	exp := "[B/W Flyweight] Drawing black and white figure of type: SquareBW\n"
	if got := buf.String(); got != exp {
		t.Errorf("got %q expected %q", got, exp)
	}
}

func TestFigureFactory(t *testing.T) {
	f := NewFigureFactory()
	var buf bytes.Buffer
	f.SetOutput(&buf)

	a := f.Figure("SquareBW", "(2,3)")
	exp := `Coordinates: (2,3)
[B/W Flyweight] Drawing black and white figure of type: SquareBW
`
	if got := buf.String(); got != exp {
		t.Errorf("got\n%s\nexpected\n%s", got, exp)
	}

	b := f.Figure("SquareBW", "(7,7)")
	if a != b {
		t.Error("second request returned a new instance")
	}
}
