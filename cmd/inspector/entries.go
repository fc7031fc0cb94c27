package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// listEntries returns the browsable files for arg and the index to start
// at. A directory starts at its first file, a file at itself among its
// siblings.
func listEntries(fs afero.Fs, arg string) ([]string, int, error) {
	info, err := fs.Stat(arg)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot open %s: %w", arg, err)
	}

	dir, start := arg, ""
	if !info.IsDir() {
		dir, start = filepath.Dir(arg), filepath.Clean(arg)
	}

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot list %s: %w", dir, err)
	}

	var entries []string
	for _, fi := range infos {
		if fi.IsDir() || strings.HasPrefix(fi.Name(), ".") || filepath.Ext(fi.Name()) == "" {
			continue
		}
		entries = append(entries, filepath.Join(dir, fi.Name()))
	}
	sort.Strings(entries)

	if len(entries) == 0 {
		return nil, 0, fmt.Errorf("no files in %s", dir)
	}
	if start == "" {
		return entries, 0, nil
	}
	for i, e := range entries {
		if e == start {
			return entries, i, nil
		}
	}
	return nil, 0, fmt.Errorf("%s cannot be previewed", arg)
}
