package dia

import (
	"fmt"
	"io"
	"os"
)

// NewGraphProxy returns a proxy standing in for the real graph
// diagram. Drawing through the proxy never reaches the real diagram.
func NewGraphProxy() *GraphProxy {
	return &GraphProxy{
		out:  os.Stdout,
		real: NewGraph(),
	}
}

type GraphProxy struct {
	out  io.Writer
	real Diagram // shielded, see Draw
}

func (p *GraphProxy) SetOutput(w io.Writer) { p.out = w }

// Draw emits the combined graphical and textual stub instead of
// drawing the shielded diagram.
func (p *GraphProxy) Draw() {
	fmt.Fprintln(p.out, "[Graph Proxy] Drawing graphical + textual stub")
}
