package main

import (
	"context"

	"github.com/gregoryv/cmdline"
	"github.com/gregoryv/dia"
)

type FigureCmd struct {
	shared opts

	typ   string
	coord string
}

func (c *FigureCmd) ExtraOptions(cli *cmdline.Parser) {
	c.typ = cli.Option("-t, --type").String("CircleColor")
	c.coord = cli.Option("-c, --coord").String("(0,0)")
}

func (c *FigureCmd) Run(ctx context.Context) error {
	f := dia.NewDiagramFactory()
	log := newLogger(c.shared)
	f.SetLogger(log)
	fig := f.CreateFigure(c.typ, c.coord)
	log.Debug("figure id ", fig.ID())
	return nil
}
