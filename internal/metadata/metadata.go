// Package metadata provides per-file image metadata to the pattern renderer
// and the inspector: capture time, camera fields, canonical display strings
// and arbitrary Exif/Iptc/Xmp tag lookups.
package metadata

import (
	"strings"
	"time"
)

// Metadata is the read-only view of one catalog file's metadata.
type Metadata interface {
	FileName() string
	HasExif() bool
	DateTime() time.Time
	Make() string
	Model() string
	Lens() string
	Rating() int
	ISO() int
	FNumber() float64
	FocalLength() float64
	ExpComp() float64
	// ShutterSpeed is the exposure time in seconds.
	ShutterSpeed() float64
	Dimensions() (width, height int)
	// Tag looks up a namespaced key such as "Exif.Photo.ISOSpeedRatings".
	// A missing tag reports ok=false.
	Tag(key string) (value string, ok bool)
}

// TagLookup resolves tags that are not available from the embedded EXIF block.
type TagLookup interface {
	Lookup(path, key string) (string, error)
}

// Namespace is the metadata family a tag key belongs to.
type Namespace int

const (
	NamespaceNone Namespace = iota
	NamespaceExif
	NamespaceIptc
	NamespaceXmp
)

func (n Namespace) String() string {
	switch n {
	case NamespaceExif:
		return "Exif"
	case NamespaceIptc:
		return "Iptc"
	case NamespaceXmp:
		return "Xmp"
	default:
		return "none"
	}
}

// NamespaceOf infers the namespace from the key prefix.
func NamespaceOf(key string) Namespace {
	switch {
	case strings.HasPrefix(key, PrefixExif):
		return NamespaceExif
	case strings.HasPrefix(key, PrefixIptc):
		return NamespaceIptc
	case strings.HasPrefix(key, PrefixXmp):
		return NamespaceXmp
	default:
		return NamespaceNone
	}
}

// lastSegment returns the part of a dotted key after its final dot.
func lastSegment(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
