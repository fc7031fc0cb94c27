package pattern

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/filecatalog/internal/metadata"
)

// CaseMode is the case normalisation applied to a name or extension.
type CaseMode int

const (
	CaseOff CaseMode = iota
	CaseUpper
	CaseLower
)

var caseModeNames = map[CaseMode]string{
	CaseOff:   "off",
	CaseUpper: "upper",
	CaseLower: "lower",
}

func (c CaseMode) String() string {
	if s, ok := caseModeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("case(%d)", int(c))
}

// ParseCaseMode accepts "off", "upper" or "lower".
func ParseCaseMode(s string) (CaseMode, error) {
	for mode, name := range caseModeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return CaseOff, fmt.Errorf("unknown case mode %q", s)
}

// RenderParams controls how a rendered name is normalised and placed.
type RenderParams struct {
	BaseDir         string
	AllowWhitespace bool
	NameCase        CaseMode
	ExtCase         CaseMode
}

// Pattern is a compiled file name pattern. It is not safe for concurrent use.
type Pattern struct {
	source   string
	elements []Element
	counter  *Counter
}

// Source returns the text the pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

// Elements returns the compiled elements in render order.
func (p *Pattern) Elements() []Element { return p.elements }

// Counter returns the progressive counter shared by the %n elements.
func (p *Pattern) Counter() *Counter { return p.counter }

// Reset re-seeds the progressive counter.
func (p *Pattern) Reset(start int) { p.counter.Reset(start) }

// HasSequence reports whether the pattern contains a %n element.
func (p *Pattern) HasSequence() bool {
	for _, e := range p.elements {
		if e.Kind == KindSequence {
			return true
		}
	}
	return false
}

// Fragment concatenates the element outputs for md without normalisation.
// Every %n element sees the same counter value; the counter then advances
// once.
func (p *Pattern) Fragment(md metadata.Metadata) string {
	seq := p.counter.Value()
	var b strings.Builder
	for _, e := range p.elements {
		b.WriteString(e.render(md, seq))
	}
	if p.HasSequence() {
		p.counter.advance()
	}
	return b.String()
}

// Render produces the new name for one item. The result is relative unless
// params.BaseDir is absolute.
func (p *Pattern) Render(md metadata.Metadata, params RenderParams) string {
	return normalize(p.Fragment(md), params)
}

// Preview renders like Render but leaves the counter untouched.
func (p *Pattern) Preview(md metadata.Metadata, params RenderParams) string {
	seq := p.counter.Value()
	defer p.counter.Reset(seq)
	return p.Render(md, params)
}

func normalize(name string, params RenderParams) string {
	stem, ext := SplitExt(name)
	if ext != "" {
		ext = string(extSeparator) + ext
	}

	out := foldCase(spaces(stem, params.AllowWhitespace), params.NameCase) +
		foldCase(spaces(ext, params.AllowWhitespace), params.ExtCase)

	if params.BaseDir != "" && params.BaseDir != curDirMarker {
		out = filepath.Join(params.BaseDir, out)
	}
	return out
}

func spaces(s string, allow bool) string {
	if allow {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, s)
}

// foldCase maps s one rune at a time. A rune whose mapping would need
// more than one rune (ß to SS) is kept as is, so the length never changes.
func foldCase(s string, mode CaseMode) string {
	var c cases.Caser
	switch mode {
	case CaseUpper:
		c = cases.Upper(language.Und)
	case CaseLower:
		c = cases.Lower(language.Und)
	default:
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		m := c.String(string(r))
		if utf8.RuneCountInString(m) != 1 {
			m = string(r)
		}
		b.WriteString(m)
	}
	return b.String()
}
