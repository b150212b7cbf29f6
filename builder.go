package dia

import (
	"fmt"
	"io"
	"os"
)

// Builder is implemented by graph builders driven by a [Director].
// The coordinate is an opaque label, builders never parse it.
type Builder interface {
	Calc(coord string)
	Draw()
	Drag(coord string)
}

// NewBarBuilder returns the builder for bar graphs, drawing through
// the given drawer.
func NewBarBuilder(d Drawer) *GraphBuilder {
	return newGraphBuilder(VariantBar, d)
}

// NewLineBuilder returns the builder for line graphs, drawing through
// the given drawer.
func NewLineBuilder(d Drawer) *GraphBuilder {
	return newGraphBuilder(VariantLine, d)
}

func newGraphBuilder(v Variant, d Drawer) *GraphBuilder {
	return &GraphBuilder{
		variant: v,
		out:     os.Stdout,
		drawer:  d,
	}
}

type GraphBuilder struct {
	variant Variant
	out     io.Writer
	drawer  Drawer
}

func (b *GraphBuilder) SetOutput(w io.Writer) { b.out = w }

func (b *GraphBuilder) Calc(coord string) {
	fmt.Fprintf(b.out, "%s calc at %s\n", b.variant, coord)
}

func (b *GraphBuilder) Draw() { b.drawer.Draw() }

func (b *GraphBuilder) Drag(coord string) {
	fmt.Fprintf(b.out, "Drag %s at %s\n", b.variant, coord)
}
