package components

import (
	"golang.org/x/text/unicode/bidi"
)

// IsRTL reports whether text reads right to left, judged by counting strong
// directional characters.
func IsRTL(text string) bool {
	var rtl, ltr int
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			rtl++
		case bidi.L:
			ltr++
		}
	}
	return rtl > ltr
}
