package main

import (
	"flag"
	"os"

	"github.com/osse101/filecatalog/internal/settings"
)

// renameFlags override the persisted rename settings for one invocation.
type renameFlags struct {
	settingsPath string
	pattern      string
	baseDir      string
	sidecars     string
	onExisting   string
	start        int
	nameCase     string
	extCase      string
	whitespace   bool

	set map[string]bool
}

func (f *renameFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.settingsPath, "settings", "", "rename settings file (default from RENAME_SETTINGS)")
	fs.StringVar(&f.pattern, "pattern", "", "file name pattern, e.g. %Y%m%d_%f.%e")
	fs.StringVar(&f.baseDir, "basedir", "", "directory relative names are placed in")
	fs.StringVar(&f.sidecars, "sidecars", "", "sidecar extensions separated by ';', e.g. +xmp;jpg")
	fs.StringVar(&f.onExisting, "on-existing", "", "skip or rename")
	fs.IntVar(&f.start, "start", 0, "first value of the %n counter")
	fs.StringVar(&f.nameCase, "name-case", "", "off, upper or lower")
	fs.StringVar(&f.extCase, "ext-case", "", "off, upper or lower")
	fs.BoolVar(&f.whitespace, "whitespace", false, "keep spaces in rendered names")
}

// apply copies the flags given on the command line onto opts.
func (f *renameFlags) apply(opts settings.RenameOptions) settings.RenameOptions {
	if f.set["pattern"] {
		opts.Pattern = f.pattern
	}
	if f.set["basedir"] {
		opts.BaseDir = f.baseDir
	}
	if f.set["sidecars"] {
		opts.Sidecars = f.sidecars
	}
	if f.set["on-existing"] {
		opts.OnExisting = f.onExisting
	}
	if f.set["start"] {
		opts.ProgressiveNumber = f.start
	}
	if f.set["name-case"] {
		opts.NameNorm = f.nameCase
	}
	if f.set["ext-case"] {
		opts.ExtNorm = f.extCase
	}
	if f.set["whitespace"] {
		opts.AllowWhitespace = f.whitespace
	}
	return opts
}

// parseFlags parses args, recording which flags were given.
func parseFlags(fs *flag.FlagSet, args []string, rf *renameFlags) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if rf != nil {
		rf.set = make(map[string]bool)
		fs.Visit(func(fl *flag.Flag) { rf.set[fl.Name] = true })
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(appName+" "+name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
