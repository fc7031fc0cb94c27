package pattern

import (
	"path/filepath"
	"runtime"
	"strings"
)

var onWindows = runtime.GOOS == "windows"

// MakeValid replaces characters that cannot appear in a file name. '/' turns
// into a division slash, everything else invalid into '_'. Directory
// separators survive only when allowSep is set.
func MakeValid(s string, allowSep bool) string {
	return makeValid(s, allowSep, onWindows)
}

// IsValidChar reports whether r may appear in a rendered path.
func IsValidChar(r rune, allowSep bool) bool {
	return isValidChar(r, allowSep, onWindows)
}

func isSeparator(r rune, windows bool) bool {
	return r == '/' || (windows && r == '\\')
}

func isValidChar(r rune, allowSep, windows bool) bool {
	if isSeparator(r, windows) {
		return allowSep
	}
	if windows && strings.ContainsRune(windowsInvalid, r) {
		return false
	}
	return true
}

func makeValid(s string, allowSep, windows bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case isValidChar(r, allowSep, windows):
			b.WriteRune(r)
		case r == '/':
			b.WriteRune(divisionSlash)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func isAbsolute(s string, windows bool) bool {
	if s == "" {
		return false
	}
	if filepath.IsAbs(s) {
		return true
	}
	r := []rune(s)[0]
	return isSeparator(r, windows)
}

// SplitExt splits name at the last '.' of its base name. A dot followed by
// whitespace does not start an extension. ext excludes the dot.
func SplitExt(name string) (stem, ext string) {
	start := strings.LastIndexAny(name, `/\`) + 1
	if !onWindows {
		start = strings.LastIndexByte(name, '/') + 1
	}
	base := name[start:]

	dot := strings.LastIndexByte(base, extSeparator)
	space := strings.LastIndexAny(base, whitespaceSet)
	if dot < 0 || (space >= 0 && dot < space) {
		return name, ""
	}
	return name[:start+dot], base[dot+1:]
}
