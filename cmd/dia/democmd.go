package main

import (
	"context"

	"github.com/gregoryv/cmdline"
	"github.com/gregoryv/dia"
	"github.com/gregoryv/dia/script"
)

type DemoCmd struct {
	shared opts
}

func (c *DemoCmd) ExtraOptions(cli *cmdline.Parser) {}

// Run plays the built in scenario; both graph variants followed by
// both figure variants.
func (c *DemoCmd) Run(ctx context.Context) error {
	f := dia.NewDiagramFactory()
	f.SetLogger(newLogger(c.shared))
	return script.Demo().Play(f)
}
