package utils

// ValidNumber checks a boundary-supplied numeric field against its allowed
// range. The pointer form lets required-but-zero values (0 °C) survive JSON
// binding; nil means the field was absent.
func ValidNumber(v *float64, min, max float64) bool {
	if v == nil {
		return false
	}
	return *v >= min && *v <= max
}
