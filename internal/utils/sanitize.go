package utils

import "strings"

// SanitizeKeyPart replaces every character that is unsafe in an object-storage
// key with an underscore. Letters, digits, dot, underscore and hyphen pass
// through unchanged.
func SanitizeKeyPart(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// SanitizeEmail folds an email address into a storage-safe path segment.
// "jane.doe@tue.nl" becomes "jane.doe_tue.nl".
func SanitizeEmail(email string) string {
	return SanitizeKeyPart(strings.ToLower(strings.TrimSpace(email)))
}
