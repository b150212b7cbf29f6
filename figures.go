package dia

import (
	"fmt"
	"io"
	"os"
)

// NewFigureFactory returns a factory serving shared flyweight
// figures. Methods are not safe to call from multiple go routines.
func NewFigureFactory() *FigureFactory {
	return &FigureFactory{
		out:  os.Stdout,
		pool: NewFigurePool(),
	}
}

type FigureFactory struct {
	out  io.Writer
	pool *FigurePool
}

func (f *FigureFactory) SetOutput(w io.Writer) {
	f.out = w
	f.pool.SetOutput(w)
}

func (f *FigureFactory) SetLogger(l *Logger) { f.pool.SetLogger(l) }

// Figure prints the coordinate and draws the shared figure for the
// given key. The returned handle is the cached instance.
func (f *FigureFactory) Figure(key, coord string) Flyweight {
	fig := f.pool.Figure(key)
	fmt.Fprintln(f.out, "Coordinates: "+coord)
	fig.Draw()
	return fig
}
