package pattern

import (
	"fmt"

	"github.com/osse101/filecatalog/internal/domain"
	"github.com/osse101/filecatalog/internal/metadata"
)

// simpleTokens maps single-character tokens without arguments to their kind.
var simpleTokens = map[rune]Kind{
	'f': KindFileStem,
	'e': KindFileExtension,
	'#': KindTrailingNumber,
	'C': KindCameraMakeModel,
	'M': KindCameraMake,
	'N': KindCameraModel,
	'r': KindRating,
	'I': KindISO,
	'F': KindAperture,
	'L': KindLens,
	'l': KindFocalLength,
	'E': KindExposureComp,
	's': KindShutterSpeed,
	'%': KindPercent,
}

// Compile parses s into a Pattern whose progressive counter starts at start.
//
// Syntax:
//
//	%f stem            %e extension        %# trailing digits of the stem
//	%a %A %b %B        day/month names     %m %Y %y %d  date numbers
//	%C make+model      %M make             %N model
//	%r rating          %I ISO              %F aperture
//	%L lens            %l focal length     %E exposure compensation
//	%s shutter speed   %n[0-9] counter     %T[key] Exif./Iptc./Xmp. tag
//	%% literal percent
//
// Everything else is literal text, in which directory separators are kept.
func Compile(s string, start int) (*Pattern, error) {
	return compile(s, start, onWindows)
}

func compile(s string, start int, windows bool) (*Pattern, error) {
	src := []rune(s)
	n := len(src)
	var elems []Element

	flush := func(from, to int) {
		if from < to {
			elems = append(elems, Element{
				Kind: KindLiteral,
				Text: makeValid(string(src[from:to]), true, windows),
			})
		}
	}

	prev := 0
	for i := 0; i < n; {
		c := src[i]
		if c != tokenEscape {
			if !isValidChar(c, true, windows) {
				return nil, syntaxError(src, i, fmt.Errorf("%w: %q", domain.ErrInvalidPattern, c))
			}
			i++
			continue
		}

		flush(prev, i)
		if i+1 >= n {
			return nil, syntaxError(src, i, fmt.Errorf("%w: trailing %%", domain.ErrUnknownToken))
		}
		tok := src[i+1]
		i += 2

		if kind, ok := simpleTokens[tok]; ok {
			elems = append(elems, Element{Kind: kind})
			prev = i
			continue
		}

		switch {
		case dateLayouts[tok] != "":
			elems = append(elems, Element{Kind: KindDate, Field: tok})
		case tok == 'n':
			width := 0
			if i < n && src[i] >= '0' && src[i] <= '9' {
				width = int(src[i] - '0')
				i++
			}
			elems = append(elems, Element{Kind: KindSequence, Width: width})
		case tok == 'T':
			if i >= n || src[i] != tagOpen {
				return nil, syntaxError(src, i, fmt.Errorf("%w: %%T needs [key]", domain.ErrUnclosedTag))
			}
			j := i + 1
			for j < n && src[j] != tagClose {
				j++
			}
			if j >= n {
				return nil, syntaxError(src, i, domain.ErrUnclosedTag)
			}
			key := string(src[i+1 : j])
			elems = append(elems, Element{
				Kind:      KindTag,
				Key:       key,
				Namespace: metadata.NamespaceOf(key),
			})
			i = j + 1
		default:
			return nil, syntaxError(src, i-2, fmt.Errorf("%w: %%%c", domain.ErrUnknownToken, tok))
		}
		prev = i
	}
	flush(prev, n)

	if len(elems) == 0 {
		return nil, syntaxError(src, 0, domain.ErrEmptyPattern)
	}
	if first := elems[0]; first.Kind == KindLiteral && isAbsolute(first.Text, windows) {
		return nil, syntaxError(src, 0, domain.ErrAbsolutePattern)
	}

	return &Pattern{
		source:   s,
		elements: elems,
		counter:  NewCounter(start),
	}, nil
}
