package main

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/filecatalog/internal/rename"
	"github.com/osse101/filecatalog/internal/settings"
)

// SettingsCommand shows or updates the persisted rename settings.
type SettingsCommand struct {
	env *env
}

func (c *SettingsCommand) Name() string { return "settings" }

func (c *SettingsCommand) Description() string {
	return "Show (no flags), update or reset the rename settings"
}

func (c *SettingsCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name())
	var rf renameFlags
	rf.bind(fs)
	reset := fs.Bool("reset", false, "restore the defaults")
	if err := parseFlags(fs, args, &rf); err != nil {
		return err
	}

	path := rf.settingsPath
	if path == "" {
		path = c.env.cfg.RenameSettings
	}

	opts, err := c.env.loadSettings(path)
	if err != nil {
		return err
	}
	if *reset {
		opts = settings.Defaults()
	}
	opts = rf.apply(opts)

	delete(rf.set, "settings")
	if *reset || len(rf.set) > 0 {
		if err := settings.Save(c.env.fs, path, opts); err != nil {
			return err
		}
		PrintSuccess("Settings saved to %s", path)
	}

	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	PrintHeader(path)
	fmt.Print(string(data))
	fmt.Printf("param file: *.%s\n", c.env.cfg.ParamFileExt)
	fmt.Printf("sidecars:   %s\n", rename.FormatSidecars(rename.ParseSidecars(opts.Sidecars)))
	return nil
}
