// Package fileops is the file-system collaborator used by batch operations:
// rename with a cross-device fallback, copy, remove and directory creation.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/spf13/afero"

	"github.com/osse101/filecatalog/internal/metrics"
)

// FS wraps an afero.Fs with the operations batch jobs need.
type FS struct {
	fs afero.Fs
}

// New wraps fs. A nil fs means the host file system.
func New(fs afero.Fs) *FS {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FS{fs: fs}
}

// Fs exposes the underlying afero file system.
func (f *FS) Fs() afero.Fs { return f.fs }

// Exists reports whether path exists. Stat errors other than not-exist
// count as existing so callers never overwrite what they cannot see.
func (f *FS) Exists(path string) bool {
	_, err := f.fs.Stat(path)
	return err == nil || !errors.Is(err, os.ErrNotExist)
}

// IsDir reports whether path is an existing directory.
func (f *FS) IsDir(path string) bool {
	ok, err := afero.IsDir(f.fs, path)
	return err == nil && ok
}

// MkdirAll creates dir and any missing parents.
func (f *FS) MkdirAll(dir string) error {
	err := f.fs.MkdirAll(dir, DirPerm)
	metrics.RecordFileOp(OpMkdir, err)
	return err
}

// Move renames src to dst. When the two live on different devices the file
// is copied and the source removed.
func (f *FS) Move(src, dst string) error {
	err := f.fs.Rename(src, dst)
	if err != nil && errors.Is(err, syscall.EXDEV) {
		slog.Debug(LogMsgCrossDeviceFallback, "src", src, "dst", dst)
		if err = f.copyFile(src, dst); err == nil {
			err = f.fs.Remove(src)
		}
	}
	metrics.RecordFileOp(OpMove, err)
	return err
}

// Copy duplicates src at dst. An existing dst is never overwritten.
func (f *FS) Copy(src, dst string) error {
	err := f.copyFile(src, dst)
	metrics.RecordFileOp(OpCopy, err)
	return err
}

// Remove deletes path.
func (f *FS) Remove(path string) error {
	err := f.fs.Remove(path)
	metrics.RecordFileOp(OpRemove, err)
	return err
}

// RemoveIfExists deletes path when present; a missing file is not an error.
func (f *FS) RemoveIfExists(path string) error {
	err := f.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (f *FS) copyFile(src, dst string) (err error) {
	in, err := f.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("copy %s: is a directory", src)
	}

	out, err := f.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.fs.Remove(dst)
		}
	}()

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	// Close stamps the mtime; set it after.
	return f.fs.Chtimes(dst, info.ModTime(), info.ModTime())
}
