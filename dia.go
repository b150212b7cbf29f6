// Package dia provides components for composing toy diagrams.
//
// Two kinds of diagrams are supported; graphs which are put together
// stepwise by builders and figures which are shared flyweights cached
// per type key. The top level [DiagramFactory] routes requests to the
// correct path. All components render by writing lines of text to a
// writer, os.Stdout unless configured otherwise.
package dia

// Diagram is implemented by all diagrams.
type Diagram interface {
	Calc()
	Draw()
	Drag()
}

// Drawer is the drawing part of a diagram, implemented by proxies and
// flyweight figures.
type Drawer interface {
	Draw()
}
