package rename

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"github.com/osse101/filecatalog/internal/metadata"
	"github.com/osse101/filecatalog/internal/pattern"
)

// Pair is one source/destination file operation.
type Pair struct {
	Source string
	Dest   string
}

// Targets expands the rendered newName for src into the file operations
// the item needs: the file itself, its param file and its sidecars. A
// relative newName is resolved against src's directory. An empty result
// means the item is skipped.
func Targets(fs afero.Fs, p *Params, src, newName string) []Pair {
	dest := newName
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(src), newName)
	}

	if exists(fs, dest) {
		if p.OnExisting != AutoSuffix {
			return nil
		}
		dest = freeName(fs, dest)
	}

	out := []Pair{{Source: src, Dest: dest}}

	if pf := p.ParamFile(src); exists(fs, pf) {
		out = append(out, Pair{Source: pf, Dest: p.ParamFile(dest)})
	}

	srcStem, _ := pattern.SplitExt(src)
	destStem, _ := pattern.SplitExt(dest)
	for _, sc := range p.Sidecars {
		orig := sc.path(src, srcStem)
		if !exists(fs, orig) || hasSource(out, orig) {
			continue
		}
		out = append(out, Pair{Source: orig, Dest: sc.path(dest, destStem)})
	}
	return out
}

// freeName appends _1, _2, ... before the extension of dest until the
// candidate does not exist.
func freeName(fs afero.Fs, dest string) string {
	stem, ext := pattern.SplitExt(dest)
	if ext != "" {
		ext = "." + ext
	}
	for i := 1; ; i++ {
		candidate := stem + suffixSeparator + strconv.Itoa(i) + ext
		if !exists(fs, candidate) {
			return candidate
		}
	}
}

func hasSource(pairs []Pair, src string) bool {
	for _, p := range pairs {
		if p.Source == src {
			return true
		}
	}
	return false
}

func exists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return ok || err != nil
}

// Plan is the preview of one item's operations.
type Plan struct {
	Item  string
	Pairs []Pair
	Err   error
}

// Skipped reports whether the item would be left alone.
func (p Plan) Skipped() bool { return p.Err == nil && len(p.Pairs) == 0 }

// PlanTargets computes the operations for items without touching the file
// system. The pattern counter is restored afterwards so a following run
// numbers items the same way.
func PlanTargets(fs afero.Fs, p *Params, items []string, read MetadataFunc) []Plan {
	counter := p.Pattern.Counter()
	start := counter.Value()
	defer counter.Reset(start)

	plans := make([]Plan, 0, len(items))
	for _, item := range items {
		md, err := read(item)
		if err != nil {
			plans = append(plans, Plan{Item: item, Err: err})
			continue
		}
		plans = append(plans, Plan{Item: item, Pairs: Targets(fs, p, item, p.NewName(md))})
	}
	return plans
}

// MetadataFunc loads the metadata of one catalog file.
type MetadataFunc func(path string) (metadata.Metadata, error)

// FileMetadata reads metadata from fs, resolving extra tags through tags.
func FileMetadata(fs afero.Fs, tags metadata.TagLookup) MetadataFunc {
	return func(path string) (metadata.Metadata, error) {
		return metadata.Open(fs, path, tags)
	}
}
