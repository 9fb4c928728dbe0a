package patch

import "strings"

// Coalesce returns *ptr when the field was sent, fallback otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Text is Coalesce for free-text fields. A sent value is trimmed, so "  " clears the field.
func Text(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	return strings.TrimSpace(*ptr)
}
