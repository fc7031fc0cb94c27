package metadata

import "fmt"

// ApertureString formats an f-number for display, e.g. "2.8".
func ApertureString(fnumber float64) string {
	return fmt.Sprintf("%0.1f", fnumber)
}

// ShutterString formats an exposure time in seconds. Fast speeds are shown
// as a fraction ("1/250"), slow ones in seconds ("2.0").
func ShutterString(seconds float64) string {
	if seconds > 0 && seconds < 0.9 {
		return fmt.Sprintf("1/%0.0f", 1.0/seconds)
	}
	return fmt.Sprintf("%0.1f", seconds)
}

// ExpCompString formats an exposure compensation in EV. With maskZero a zero
// compensation renders as the empty string.
func ExpCompString(ev float64, maskZero bool) string {
	if maskZero && ev == 0 {
		return ""
	}
	return fmt.Sprintf("%0.2f", ev)
}
