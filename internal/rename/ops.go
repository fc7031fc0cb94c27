package rename

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/osse101/filecatalog/internal/catalog"
	"github.com/osse101/filecatalog/internal/domain"
	"github.com/osse101/filecatalog/internal/fileops"
	"github.com/osse101/filecatalog/internal/logger"
	"github.com/osse101/filecatalog/internal/pattern"
)

// Transfer renames (Move) or copies each item to the name its pattern
// renders, carrying the param file and sidecars along.
type Transfer struct {
	FS       *fileops.FS
	Params   *Params
	Metadata MetadataFunc
	// Catalog, when set, follows successful moves. Copies leave it alone.
	Catalog catalog.Store
	Move    bool
}

// Kind implements Operation.
func (t *Transfer) Kind() domain.Operation {
	if t.Move {
		return domain.OperationRename
	}
	return domain.OperationCopy
}

// Apply implements Operation.
func (t *Transfer) Apply(ctx context.Context, item string) []Result {
	log := logger.FromContext(ctx)

	read := t.Metadata
	if read == nil {
		read = FileMetadata(t.FS.Fs(), nil)
	}
	md, err := read(item)
	if err != nil {
		log.Warn(LogMsgMetadataFailed, "path", item, "error", err)
		return []Result{{Item: item, Source: item, Err: err}}
	}

	pairs := Targets(t.FS.Fs(), t.Params, item, t.Params.NewName(md))
	if len(pairs) == 0 {
		log.Info(LogMsgItemSkipped, "path", item)
		return []Result{{Item: item, Source: item, Skipped: true}}
	}

	verb := "copy"
	if t.Move {
		verb = "move"
	}

	results := make([]Result, 0, len(pairs))
	for i, p := range pairs {
		err := t.FS.MkdirAll(filepath.Dir(p.Dest))
		if err == nil {
			if t.Move {
				err = t.FS.Move(p.Source, p.Dest)
			} else {
				err = t.FS.Copy(p.Source, p.Dest)
			}
		}

		if err != nil {
			err = fmt.Errorf(ErrMsgOperationFailed+": %w", verb, p.Source, p.Dest, err)
			log.Error(LogMsgItemFailed, "src", p.Source, "dst", p.Dest, "error", err)
		} else if i == 0 && t.Move && t.Catalog != nil {
			if cerr := t.Catalog.RenameEntry(ctx, p.Source, p.Dest); cerr != nil {
				log.Warn(LogMsgCatalogUpdate, "path", p.Source, "error", cerr)
			}
		}
		results = append(results, Result{Item: item, Source: p.Source, Dest: p.Dest, Err: err})
	}
	return results
}

// Delete removes each item together with its param file and sidecars.
type Delete struct {
	FS           *fileops.FS
	Sidecars     []SidecarSpec
	ParamFileExt string
	Catalog      catalog.Store
}

// Kind implements Operation.
func (d *Delete) Kind() domain.Operation { return domain.OperationDelete }

// Apply implements Operation.
func (d *Delete) Apply(ctx context.Context, item string) []Result {
	log := logger.FromContext(ctx)

	var err error
	if d.FS.IsDir(item) {
		err = errors.New(ErrMsgIsDirectory)
	} else {
		err = d.FS.Remove(item)
	}
	if err != nil {
		err = fmt.Errorf(ErrMsgDeleteFailed+": %w", item, err)
		log.Error(LogMsgItemFailed, "path", item, "error", err)
		return []Result{{Item: item, Source: item, Err: err}}
	}
	if d.Catalog != nil {
		if cerr := d.Catalog.DeleteEntry(ctx, item); cerr != nil {
			log.Warn(LogMsgCatalogUpdate, "path", item, "error", cerr)
		}
	}

	results := []Result{{Item: item, Source: item}}
	extra := []string{ParamFile(item, d.ParamFileExt)}
	stem, _ := pattern.SplitExt(item)
	for _, sc := range d.Sidecars {
		extra = append(extra, sc.path(item, stem))
	}

	seen := map[string]bool{item: true}
	for _, path := range extra {
		if seen[path] || !d.FS.Exists(path) {
			continue
		}
		seen[path] = true
		err := d.FS.RemoveIfExists(path)
		if err != nil {
			err = fmt.Errorf(ErrMsgDeleteFailed+": %w", path, err)
			log.Error(LogMsgItemFailed, "path", path, "error", err)
		}
		results = append(results, Result{Item: item, Source: path, Err: err})
	}
	return results
}
