package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/gregoryv/cmdline"
	"github.com/gregoryv/dia"
	"github.com/gregoryv/dia/script"
)

type RunCmd struct {
	shared opts

	file string
}

func (c *RunCmd) ExtraOptions(cli *cmdline.Parser) {
	c.file = cli.Option("-f, --file, $DIA_SCENARIO").String("scenario.yml")
}

// Run plays the scenario file against a fresh factory.
func (c *RunCmd) Run(ctx context.Context) error {
	s, err := script.Load(c.file)
	if err != nil {
		return err
	}
	log := newLogger(c.shared)
	log.SetLogPrefix(uuid.NewString())
	log.Debug("play ", s.Name)

	f := dia.NewDiagramFactory()
	f.SetLogger(log)
	return s.Play(f)
}
