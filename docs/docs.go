// Package docs provides design diagrams of the pattern wiring.
package docs

import (
	"github.com/gregoryv/dia"
	"github.com/gregoryv/draw/design"
)

func NewDesignDiagram() *design.ClassDiagram {
	var (
		d       = design.NewClassDiagram()
		factory = d.Struct(dia.DiagramFactory{})
		graphs  = d.Struct(dia.GraphFactory{})
		figures = d.Struct(dia.FigureFactory{})

		director = d.Struct(dia.Director{})
		builder  = d.Interface((*dia.Builder)(nil))
		proxy    = d.Struct(dia.GraphProxy{})

		pool    = d.Struct(dia.FigurePool{})
		diagram = d.Interface((*dia.Diagram)(nil))
	)

	d.Place(factory).At(100, 100)
	d.Place(graphs, figures).RightOf(factory)

	d.Place(director, builder, proxy).Below(graphs)
	d.Place(pool).Below(figures)

	d.Place(diagram).RightOf(proxy).Move(100, 0)
	return d
}

// NewGraphSequence shows the flow of one graph request.
func NewGraphSequence() *design.SequenceDiagram {
	d := design.NewSequenceDiagram()
	d.ColWidth = 120
	var (
		client   = d.Add("client")
		factory  = d.AddStruct(dia.DiagramFactory{})
		graphs   = d.AddStruct(dia.GraphFactory{})
		director = d.AddStruct(dia.Director{})
		builder  = d.AddInterface((*dia.Builder)(nil))
	)
	d.Link(client, factory, `Diagram("Graph", "Line", "(10,20)")`)
	d.Link(factory, graphs, "CreateGraph")
	d.Link(graphs, director, "Construct(coord)")
	d.Link(director, builder, "Calc, Draw, Drag")
	d.SetCaption("Figure 1. Showing dia.DiagramFactory.Diagram for graphs")
	return d
}

// NewFigureSequence shows the flow of one figure request.
func NewFigureSequence() *design.SequenceDiagram {
	d := design.NewSequenceDiagram()
	d.ColWidth = 120
	var (
		client  = d.Add("client")
		factory = d.AddStruct(dia.DiagramFactory{})
		figures = d.AddStruct(dia.FigureFactory{})
		pool    = d.AddStruct(dia.FigurePool{})
	)
	d.Link(client, factory, `Diagram("Figure", "CircleColor", "(5,5)")`)
	d.Link(factory, figures, "Figure(key, coord)")
	d.Link(figures, pool, "Figure(key) : shared")
	d.Link(figures, figures, "Draw")
	d.SetCaption("Figure 2. Showing dia.DiagramFactory.Diagram for figures")
	return d
}
