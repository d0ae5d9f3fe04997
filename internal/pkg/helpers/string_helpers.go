package helpers

// FirstNonEmpty returns the first non-empty value. Profile updates use it to keep
// the stored value when the request leaves a field blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
