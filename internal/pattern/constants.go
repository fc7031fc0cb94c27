package pattern

// ============================================================================
// Pattern Syntax
// ============================================================================

const (
	tokenEscape   = '%'
	tagOpen       = '['
	tagClose      = ']'
	extSeparator  = '.'
	suffixJoiner  = "_"
	curDirMarker  = "."
	whitespaceSet = " \t\f\v\n\r"
)

// divisionSlash stands in for '/' in text that may not contain separators.
const divisionSlash = '∕'

// windowsInvalid lists characters Windows rejects in file names.
const windowsInvalid = `<>:"|?*`

// dateLayouts maps the supported strftime fields to Go reference layouts.
var dateLayouts = map[rune]string{
	'a': "Mon",
	'A': "Monday",
	'b': "Jan",
	'B': "January",
	'm': "01",
	'Y': "2006",
	'y': "06",
	'd': "02",
}
