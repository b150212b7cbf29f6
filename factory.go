package dia

import "io"

// NewDiagramFactory returns the top level factory writing to
// os.Stdout. Methods are not safe to call from multiple go routines.
func NewDiagramFactory() *DiagramFactory {
	return &DiagramFactory{
		graphs:  NewGraphFactory(),
		figures: NewFigureFactory(),
	}
}

type DiagramFactory struct {
	graphs  *GraphFactory
	figures *FigureFactory
}

func (f *DiagramFactory) SetOutput(w io.Writer) {
	f.graphs.SetOutput(w)
	f.figures.SetOutput(w)
}

func (f *DiagramFactory) SetLogger(l *Logger) {
	f.graphs.SetLogger(l)
	f.figures.SetLogger(l)
}

// Diagram routes the request to the graph or figure path by the
// element name. Unknown elements and graph types result in an error
// and no output.
func (f *DiagramFactory) Diagram(element, typ, coord string) error {
	kind, err := ParseKind(element)
	if err != nil {
		return err
	}
	switch kind {
	case KindGraph:
		return f.graphs.CreateGraph(typ, coord)

	case KindFigure:
		f.figures.Figure(typ, coord)
	}
	return nil
}

// CreateGraph builds the given graph variant, see
// [GraphFactory.CreateGraph].
func (f *DiagramFactory) CreateGraph(typ, coord string) error {
	return f.graphs.CreateGraph(typ, coord)
}

// CreateFigure draws the shared figure for the given key, see
// [FigureFactory.Figure].
func (f *DiagramFactory) CreateFigure(typ, coord string) Flyweight {
	return f.figures.Figure(typ, coord)
}
