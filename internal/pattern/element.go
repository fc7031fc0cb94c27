package pattern

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/osse101/filecatalog/internal/metadata"
)

// Kind selects what an Element renders.
type Kind int

const (
	KindLiteral Kind = iota
	KindFileStem
	KindFileExtension
	KindTrailingNumber
	KindDate
	KindCameraMakeModel
	KindCameraMake
	KindCameraModel
	KindRating
	KindISO
	KindAperture
	KindLens
	KindFocalLength
	KindExposureComp
	KindShutterSpeed
	KindSequence
	KindTag
	KindPercent
)

var kindNames = [...]string{
	KindLiteral:         "literal",
	KindFileStem:        "file-stem",
	KindFileExtension:   "file-extension",
	KindTrailingNumber:  "trailing-number",
	KindDate:            "date",
	KindCameraMakeModel: "camera",
	KindCameraMake:      "make",
	KindCameraModel:     "model",
	KindRating:          "rating",
	KindISO:             "iso",
	KindAperture:        "aperture",
	KindLens:            "lens",
	KindFocalLength:     "focal-length",
	KindExposureComp:    "exposure-comp",
	KindShutterSpeed:    "shutter-speed",
	KindSequence:        "sequence",
	KindTag:             "tag",
	KindPercent:         "percent",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Element is one compiled unit of a pattern. Only the fields relevant to
// Kind are set.
type Element struct {
	Kind Kind

	Text      string             // KindLiteral, already sanitised
	Field     rune               // KindDate: one of a A b B m Y y d
	Width     int                // KindSequence: zero-pad width
	Key       string             // KindTag
	Namespace metadata.Namespace // KindTag
}

var trailingDigits = regexp.MustCompile(`^.*?([0-9]+)$`)

// render produces the element's fragment for one item. seq is the value of
// the pattern's counter for this render.
func (e Element) render(md metadata.Metadata, seq int) string {
	switch e.Kind {
	case KindLiteral:
		return e.Text
	case KindPercent:
		return "%"
	case KindSequence:
		return pad(strconv.Itoa(seq), e.Width)
	case KindTag:
		if e.Namespace == metadata.NamespaceNone {
			return ""
		}
		v, ok := md.Tag(e.Key)
		if !ok {
			return ""
		}
		return MakeValid(v, false)
	}
	return MakeValid(e.field(md), false)
}

func (e Element) field(md metadata.Metadata) string {
	switch e.Kind {
	case KindFileStem:
		stem, _ := SplitExt(filepath.Base(md.FileName()))
		return stem
	case KindFileExtension:
		_, ext := SplitExt(md.FileName())
		return ext
	case KindTrailingNumber:
		stem, _ := SplitExt(filepath.Base(md.FileName()))
		if m := trailingDigits.FindStringSubmatch(stem); m != nil {
			return m[1]
		}
		return ""
	case KindDate:
		return md.DateTime().Format(dateLayouts[e.Field])
	case KindCameraMakeModel:
		return md.Make() + " " + md.Model()
	case KindCameraMake:
		return md.Make()
	case KindCameraModel:
		return md.Model()
	case KindRating:
		return strconv.Itoa(md.Rating())
	case KindISO:
		return strconv.Itoa(md.ISO())
	case KindAperture:
		return metadata.ApertureString(md.FNumber())
	case KindLens:
		return md.Lens()
	case KindFocalLength:
		return strconv.FormatFloat(md.FocalLength(), 'f', 0, 64)
	case KindExposureComp:
		return metadata.ExpCompString(md.ExpComp(), false)
	case KindShutterSpeed:
		return metadata.ShutterString(md.ShutterSpeed())
	}
	return ""
}

func pad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
