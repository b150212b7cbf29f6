package dia

import "io"

// NewGraphFactory returns a factory holding one builder instance per
// graph variant, both drawing through a single shared [GraphProxy].
// Methods are not safe to call from multiple go routines.
func NewGraphFactory() *GraphFactory {
	proxy := NewGraphProxy()
	return &GraphFactory{
		proxy: proxy,
		builders: map[Variant]*GraphBuilder{
			VariantBar:  NewBarBuilder(proxy),
			VariantLine: NewLineBuilder(proxy),
		},
		log: NewLogger(),
	}
}

type GraphFactory struct {
	proxy    *GraphProxy
	builders map[Variant]*GraphBuilder
	log      *Logger
}

func (f *GraphFactory) SetOutput(w io.Writer) {
	f.proxy.SetOutput(w)
	for _, b := range f.builders {
		b.SetOutput(w)
	}
}

func (f *GraphFactory) SetLogger(l *Logger) { f.log = l }

// CreateGraph builds the graph variant named by typ at the given
// coordinate. The coordinate is passed through the build sequence, it
// is never stored on the builder.
func (f *GraphFactory) CreateGraph(typ, coord string) error {
	v, err := ParseVariant(typ)
	if err != nil {
		return err
	}
	f.log.Debug("construct ", v, " graph at ", coord)
	d := NewDirector(f.builders[v])
	d.Construct(coord)
	return nil
}
