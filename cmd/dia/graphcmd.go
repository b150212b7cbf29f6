package main

import (
	"context"

	"github.com/gregoryv/cmdline"
	"github.com/gregoryv/dia"
)

type GraphCmd struct {
	shared opts

	typ   string
	coord string
}

func (c *GraphCmd) ExtraOptions(cli *cmdline.Parser) {
	c.typ = cli.Option("-t, --type").String("Bar")
	c.coord = cli.Option("-c, --coord").String("(0,0)")
}

func (c *GraphCmd) Run(ctx context.Context) error {
	f := dia.NewDiagramFactory()
	f.SetLogger(newLogger(c.shared))
	return f.CreateGraph(c.typ, c.coord)
}
