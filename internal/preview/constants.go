package preview

const (
	// histogramBins is the number of bins per channel
	histogramBins = 256
	// clipThreshold is the channel value treated as clipped
	clipThreshold = 254
)

// Log messages
const (
	LogMsgDecodeFailed      = "Preview decode failed"
	LogMsgThumbnailFallback = "Using embedded thumbnail"
	LogMsgNotDecodable      = "Path cannot be previewed"
)

// Error messages
const (
	ErrMsgEmptyPath     = "empty path"
	ErrMsgIsDirectory   = "is a directory"
	ErrMsgNoExtension   = "no file extension"
	ErrMsgNoSurface     = "decoder returned no surface"
	ErrMsgUnknownFormat = "unsupported image format"
)
