package main

import (
	"context"
	"fmt"

	"github.com/osse101/filecatalog/internal/rename"
)

// PreviewCommand prints the names the pattern renders without touching
// any file.
type PreviewCommand struct {
	env *env
}

func (c *PreviewCommand) Name() string { return "preview" }

func (c *PreviewCommand) Description() string {
	return "Show the names a rename would produce"
}

func (c *PreviewCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name())
	var rf renameFlags
	rf.bind(fs)
	if err := parseFlags(fs, args, &rf); err != nil {
		return err
	}

	opts, err := c.env.loadSettings(rf.settingsPath)
	if err != nil {
		return err
	}
	opts = rf.apply(opts)
	params, err := opts.Params(c.env.fs, c.env.cfg.ParamFileExt)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Pattern %s", params.Pattern.Source()))
	printPlans(rename.PlanTargets(c.env.fs, params, fs.Args(), c.env.metadataFunc()))
	return nil
}
