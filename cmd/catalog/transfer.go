package main

import (
	"context"
	"fmt"

	"github.com/osse101/filecatalog/internal/fileops"
	"github.com/osse101/filecatalog/internal/rename"
	"github.com/osse101/filecatalog/internal/settings"
	"github.com/osse101/filecatalog/internal/worker"
)

// TransferCommand renames (move) or copies files to the names rendered by
// the pattern.
type TransferCommand struct {
	env  *env
	move bool
}

func (c *TransferCommand) Name() string {
	if c.move {
		return "rename"
	}
	return "copy"
}

func (c *TransferCommand) Description() string {
	if c.move {
		return "Rename files (and their param files and sidecars) using a pattern"
	}
	return "Copy files (and their param files and sidecars) to pattern names"
}

func (c *TransferCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name())
	var rf renameFlags
	rf.bind(fs)
	dryRun := fs.Bool("dry-run", false, "print the planned operations without touching files")
	save := fs.Bool("save", false, "persist the effective settings")
	if err := parseFlags(fs, args, &rf); err != nil {
		return err
	}
	items := fs.Args()
	if len(items) == 0 {
		PrintWarning("No files given")
		return nil
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

	if *dryRun {
		printPlans(rename.PlanTargets(c.env.fs, params, items, c.env.metadataFunc()))
		return nil
	}

	store, err := c.env.openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	op := &rename.Transfer{
		FS:       fileops.New(c.env.fs),
		Params:   params,
		Metadata: c.env.metadataFunc(),
		Catalog:  store,
		Move:     c.move,
	}
	results, err := runBatch(ctx, rename.NewBatch(op, items))
	if err != nil {
		return err
	}
	if err := reportResults(results); err != nil {
		return err
	}

	if *save {
		// The counter continues where this batch stopped.
		opts.ProgressiveNumber = params.Pattern.Counter().Value()
		path := rf.settingsPath
		if path == "" {
			path = c.env.cfg.RenameSettings
		}
		if err := settings.Save(c.env.fs, path, opts); err != nil {
			return err
		}
		PrintInfo("Settings saved to %s", path)
	}
	return nil
}

// runBatch runs b on a single-worker pool, drawing a progress bar, and
// waits for it. Interrupting ctx cancels the batch before the next item.
func runBatch(ctx context.Context, b *rename.Batch) ([]rename.Result, error) {
	pool := worker.NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	job := rename.NewJob(b, progressBar)
	if err := pool.Enqueue(job); err != nil {
		return nil, err
	}

	stop := context.AfterFunc(ctx, job.Cancel)
	defer stop()

	return job.Wait(context.Background())
}

// reportResults prints failures and a summary. It returns an error when
// any operation failed.
func reportResults(results []rename.Result) error {
	var ok, skipped, failed int
	for _, r := range results {
		switch {
		case r.Skipped:
			skipped++
			PrintWarning("Skipped %s", r.Item)
		case r.Err != nil:
			failed++
			PrintError("%v", r.Err)
		default:
			ok++
		}
	}
	PrintHeader("Summary")
	PrintSuccess("%d done", ok)
	if skipped > 0 {
		PrintWarning("%d skipped", skipped)
	}
	if failed > 0 {
		return fmt.Errorf("%d operations failed", failed)
	}
	return nil
}

func printPlans(plans []rename.Plan) {
	for _, p := range plans {
		switch {
		case p.Err != nil:
			PrintError("%s: %v", p.Item, p.Err)
		case p.Skipped():
			PrintWarning("%s: destination exists, skipped", p.Item)
		default:
			for _, pair := range p.Pairs {
				fmt.Printf("  %s -> %s\n", pair.Source, pair.Dest)
			}
		}
	}
}
