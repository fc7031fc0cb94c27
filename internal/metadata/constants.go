package metadata

import "time"

// ============================================================================
// Tag key prefixes
// ============================================================================

const (
	PrefixExif = "Exif."
	PrefixIptc = "Iptc."
	PrefixXmp  = "Xmp."
)

// KeyRating is where the star rating lives; it is not part of the EXIF IFDs.
const KeyRating = "Xmp.xmp.Rating"

// ============================================================================
// Exiftool
// ============================================================================

const (
	DefaultExiftoolBinary  = "exiftool"
	DefaultExiftoolTimeout = 10 * time.Second

	// exiftool -s3 prints the bare value
	exiftoolValueOnlyFlag = "-s3"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgExifDecodeFailed = "No EXIF block decoded"
	LogMsgTagLookupFailed  = "Tag lookup failed"
	LogMsgExiftoolFailed   = "exiftool failed"
)
