// Package rename turns a compiled pattern into file operations: target
// expansion with conflict handling and sidecars, and the batch state machine
// that applies rename, copy and delete one item at a time.
package rename

import (
	"fmt"
	"strings"

	"github.com/osse101/filecatalog/internal/metadata"
	"github.com/osse101/filecatalog/internal/pattern"
)

// OnExisting decides what happens when the destination already exists.
type OnExisting int

const (
	// Skip leaves the item, its param file and its sidecars untouched.
	Skip OnExisting = iota
	// AutoSuffix appends _1, _2, ... before the extension until free.
	AutoSuffix
)

func (o OnExisting) String() string {
	switch o {
	case Skip:
		return OnExistingSkip
	case AutoSuffix:
		return OnExistingRename
	default:
		return fmt.Sprintf("on-existing(%d)", int(o))
	}
}

// ParseOnExisting accepts "skip" or "rename".
func ParseOnExisting(s string) (OnExisting, error) {
	switch strings.ToLower(s) {
	case OnExistingSkip:
		return Skip, nil
	case OnExistingRename:
		return AutoSuffix, nil
	}
	return Skip, fmt.Errorf("unknown on-existing action %q", s)
}

// SidecarSpec names a companion file. With Append the extension is added
// after the full file name (IMG.CR2.xmp), otherwise it replaces the
// extension (IMG.xmp).
type SidecarSpec struct {
	Ext    string
	Append bool
}

func (s SidecarSpec) String() string {
	if s.Append {
		return appendMarker + s.Ext
	}
	return s.Ext
}

// path returns the sidecar of file, given file's path without extension.
func (s SidecarSpec) path(file, stem string) string {
	if s.Append {
		return file + "." + s.Ext
	}
	return stem + "." + s.Ext
}

// ParseSidecars splits a ';'-separated list such as "+xmp; jpg".
// Entries are trimmed and empty ones dropped.
func ParseSidecars(s string) []SidecarSpec {
	var out []SidecarSpec
	for _, part := range strings.Split(s, sidecarSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, appendMarker) {
			ext := strings.TrimSpace(part[len(appendMarker):])
			if ext == "" {
				continue
			}
			out = append(out, SidecarSpec{Ext: ext, Append: true})
			continue
		}
		out = append(out, SidecarSpec{Ext: part})
	}
	return out
}

// FormatSidecars is the inverse of ParseSidecars.
func FormatSidecars(specs []SidecarSpec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, sidecarSeparator)
}

// Params is everything needed to compute the targets of one batch.
type Params struct {
	Pattern      *pattern.Pattern
	Render       pattern.RenderParams
	OnExisting   OnExisting
	Sidecars     []SidecarSpec
	ParamFileExt string
}

// NewName renders the destination name for md and advances the counter.
func (p *Params) NewName(md metadata.Metadata) string {
	return p.Pattern.Render(md, p.Render)
}

// ParamFile returns the processing-parameters file that travels with path.
func (p *Params) ParamFile(path string) string {
	return ParamFile(path, p.ParamFileExt)
}

// ParamFile returns path with the param-file extension appended.
func ParamFile(path, ext string) string {
	if ext == "" {
		ext = DefaultParamFileExt
	}
	return path + "." + ext
}
