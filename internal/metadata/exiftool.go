package metadata

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/osse101/filecatalog/internal/domain"
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command with os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Exiftool resolves namespaced tag keys by shelling out to exiftool.
type Exiftool struct {
	Binary  string
	Timeout time.Duration
	Run     Runner
}

var _ TagLookup = (*Exiftool)(nil)

// NewExiftool creates a lookup using the given binary name or path.
func NewExiftool(binary string) *Exiftool {
	if binary == "" {
		binary = DefaultExiftoolBinary
	}
	return &Exiftool{
		Binary:  binary,
		Timeout: DefaultExiftoolTimeout,
		Run:     ExecRunner,
	}
}

// Lookup returns the value of key for path. A tag the file does not carry
// yields domain.ErrTagNotFound.
func (e *Exiftool) Lookup(path, key string) (string, error) {
	name, ok := ExiftoolTagName(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrTagNotFound, key)
	}

	ctx := context.Background()
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	out, err := e.Run(ctx, e.Binary, exiftoolValueOnlyFlag, "-"+name, path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogMsgExiftoolFailed, err)
	}

	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrTagNotFound, key)
	}
	return v, nil
}

// ExiftoolTagName translates a namespaced key into exiftool's group:tag
// form. "Exif.Photo.FNumber" becomes "EXIF:FNumber",
// "Iptc.Application2.City" becomes "IPTC:City" and "Xmp.dc.title" becomes
// "XMP-dc:title".
func ExiftoolTagName(key string) (string, bool) {
	parts := strings.Split(key, ".")
	if len(parts) < 2 || parts[len(parts)-1] == "" {
		return "", false
	}
	tag := parts[len(parts)-1]

	switch NamespaceOf(key) {
	case NamespaceExif:
		return "EXIF:" + tag, true
	case NamespaceIptc:
		return "IPTC:" + tag, true
	case NamespaceXmp:
		if len(parts) < 3 || parts[1] == "" {
			return "XMP:" + tag, true
		}
		return "XMP-" + parts[1] + ":" + tag, true
	default:
		return "", false
	}
}
