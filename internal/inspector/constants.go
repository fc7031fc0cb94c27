package inspector

// Keyboard shortcuts understood by HandleKey.
const (
	KeyHistogram   = "h"
	KeyCMS         = "c"
	KeyZoom11      = "z"
	KeyZoomFit     = "x"
	KeyEmbedded    = "j"
	KeyLinear      = "r"
	KeyFilm        = "f"
	KeyShadowBoost = "s"
	KeyClipping    = "w"
	KeySplit       = "y"
	KeyTab         = "Tab"
	// Shifted
	KeyFocusMask = "F"
	KeyInfo      = "I"
)

const (
	// MsgNoExif is the info text of files without EXIF data
	MsgNoExif = "No EXIF data available"

	maxAreas = 2

	// focusThreshold is the Laplacian response that counts as sharp
	focusThreshold = 48
)

// Log messages
const (
	LogMsgSwitchImage  = "Inspector switched image"
	LogMsgNoPreview    = "No preview available"
	LogMsgModeChanged  = "Inspector mode changed"
	LogMsgMetadataFail = "Could not read metadata for info text"
)
