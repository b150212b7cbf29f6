package dia

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Flyweight is the shared handle to a cached figure.
type Flyweight interface {
	Drawer

	// ID returns the unique id assigned when the figure was created.
	ID() string
	// Key returns the type key the figure is cached under.
	Key() string
}

// NewFigurePool returns an empty figure pool. Figures are cached per
// type key for the lifetime of the pool, nothing is ever evicted.
// Methods are not safe to call from multiple go routines.
func NewFigurePool() *FigurePool {
	return &FigurePool{
		out:     os.Stdout,
		figures: make(map[string]Flyweight),
		log:     NewLogger(),
	}
}

type FigurePool struct {
	out     io.Writer
	figures map[string]Flyweight
	log     *Logger
}

// SetOutput configures the writer for figures created after the call
// and for already cached figures that have a SetOutput method.
func (p *FigurePool) SetOutput(w io.Writer) {
	p.out = w
	for _, f := range p.figures {
		if f, ok := f.(interface{ SetOutput(io.Writer) }); ok {
			f.SetOutput(w)
		}
	}
}

func (p *FigurePool) SetLogger(l *Logger) { p.log = l }

// Figure returns the shared figure for the given key, creating it on
// first use. Keys containing "Color" yield the colored variant, all
// others the black and white one. Any string is a valid key.
func (p *FigurePool) Figure(key string) Flyweight {
	if f, found := p.figures[key]; found {
		p.log.Debug("reuse figure ", key, " ", f.ID())
		return f
	}
	var f Flyweight
	id := uuid.NewString()
	if strings.Contains(key, "Color") {
		f = &ColoredFigure{id: id, key: key, out: p.out}
	} else {
		f = &BWFigure{id: id, key: key, out: p.out}
	}
	p.figures[key] = f
	p.log.Debug("new figure ", key, " ", id)
	return f
}

// Len returns the number of cached figures.
func (p *FigurePool) Len() int { return len(p.figures) }

type ColoredFigure struct {
	id  string
	key string
	out io.Writer
}

func (f *ColoredFigure) ID() string  { return f.id }
func (f *ColoredFigure) Key() string { return f.key }

func (f *ColoredFigure) SetOutput(w io.Writer) { f.out = w }

func (f *ColoredFigure) Draw() {
	fmt.Fprintf(f.out, "[Colored Flyweight] Drawing colored figure of type: %s\n", f.key)
}

type BWFigure struct {
	id  string
	key string
	out io.Writer
}

func (f *BWFigure) ID() string  { return f.id }
func (f *BWFigure) Key() string { return f.key }

func (f *BWFigure) SetOutput(w io.Writer) { f.out = w }

func (f *BWFigure) Draw() {
	fmt.Fprintf(f.out, "[B/W Flyweight] Drawing black and white figure of type: %s\n", f.key)
}
