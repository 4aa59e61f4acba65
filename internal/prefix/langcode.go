package prefix

import "regexp"

// LegacyLanguageCode is accepted regardless of shape until it is renamed.
const LegacyLanguageCode = "be-x-old"

var languageCodeShape = regexp.MustCompile(`^[a-z][a-z][a-z]?(-[a-z]+)?$`)

// ValidLanguageCode reports whether code is a language code of two or three
// lowercase letters with an optional "-subtag", no longer than maxLen bytes.
func ValidLanguageCode(code string, maxLen int) bool {
	if len(code) > maxLen {
		return false
	}
	if code == LegacyLanguageCode {
		return true
	}
	return languageCodeShape.MatchString(code)
}
