package metadata

import "time"

// Static is an in-memory Metadata. Used for previews of synthetic items and
// in tests.
type Static struct {
	Path     string
	Exif     bool
	Time     time.Time
	CamMake  string
	CamModel string
	LensName string
	Stars    int
	ISOSpeed int
	Aperture float64
	Focal    float64
	Comp     float64
	Shutter  float64
	Width    int
	Height   int
	Tags     map[string]string
}

var _ Metadata = (*Static)(nil)

func (s *Static) FileName() string      { return s.Path }
func (s *Static) HasExif() bool         { return s.Exif }
func (s *Static) DateTime() time.Time   { return s.Time }
func (s *Static) Make() string          { return s.CamMake }
func (s *Static) Model() string         { return s.CamModel }
func (s *Static) Lens() string          { return s.LensName }
func (s *Static) Rating() int           { return s.Stars }
func (s *Static) ISO() int              { return s.ISOSpeed }
func (s *Static) FNumber() float64      { return s.Aperture }
func (s *Static) FocalLength() float64  { return s.Focal }
func (s *Static) ExpComp() float64      { return s.Comp }
func (s *Static) ShutterSpeed() float64 { return s.Shutter }

func (s *Static) Dimensions() (int, int) { return s.Width, s.Height }

func (s *Static) Tag(key string) (string, bool) {
	v, ok := s.Tags[key]
	return v, ok
}
