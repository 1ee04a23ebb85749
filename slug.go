package medcorpus

import (
	"strings"
	"unicode"
)

// Slugify creates a filesystem-safe slug from an entry name.
// Converts to lowercase and collapses runs of non-alphanumeric
// characters into a single hyphen.
func Slugify(name string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
