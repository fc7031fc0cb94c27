package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/osse101/filecatalog/internal/fileops"
	"github.com/osse101/filecatalog/internal/rename"
)

const confirmYes = "yes"

// DeleteCommand removes files with their param files and sidecars.
type DeleteCommand struct {
	env *env
}

func (c *DeleteCommand) Name() string { return "delete" }

func (c *DeleteCommand) Description() string {
	return "Delete files together with their param files and sidecars"
}

func (c *DeleteCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name())
	settingsPath := fs.String("settings", "", "rename settings file (default from RENAME_SETTINGS)")
	sidecars := fs.String("sidecars", "", "sidecar extensions (default from the settings)")
	force := fs.Bool("force", false, "do not ask for confirmation")
	if err := parseFlags(fs, args, nil); err != nil {
		return err
	}
	items := fs.Args()
	if len(items) == 0 {
		PrintWarning("No files given")
		return nil
	}

	specs := *sidecars
	if specs == "" {
		opts, err := c.env.loadSettings(*settingsPath)
		if err != nil {
			return err
		}
		specs = opts.Sidecars
	}

	if !*force && !confirm(fmt.Sprintf("Delete %d files?", len(items))) {
		PrintInfo("Aborted")
		return nil
	}

	store, err := c.env.openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	op := &rename.Delete{
		FS:           fileops.New(c.env.fs),
		Sidecars:     rename.ParseSidecars(specs),
		ParamFileExt: c.env.cfg.ParamFileExt,
		Catalog:      store,
	}
	results, err := runBatch(ctx, rename.NewBatch(op, items))
	if err != nil {
		return err
	}
	return reportResults(results)
}

func confirm(question string) bool {
	fmt.Printf("%s Type '%s' to confirm: ", question, confirmYes)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line) == confirmYes
}
