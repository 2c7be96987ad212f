package quizgen

import (
	"strconv"
	"unicode/utf16"
)

// Fingerprint returns a short, stable digest of text used to bucket
// question history. It is the classic 31-multiplier string hash over
// UTF-16 code units, truncated to a signed 32-bit integer, so it matches
// JavaScript and Java string hashing. Collisions are possible and only
// affect history lookups.
func Fingerprint(text string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(text)) {
		h = (h << 5) - h + int32(c)
	}
	return strconv.FormatInt(int64(h), 10)
}
