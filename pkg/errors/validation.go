package errors

// ValidateTermWidth checks an explicit --term-width value.
func ValidateTermWidth(width int) error {
	if width <= 0 {
		return New(ErrCodeInvalidFlag, "terminal width must be positive, got %d", width)
	}
	return nil
}

// ValidateMargins checks the horizontal and vertical margin sizes.
func ValidateMargins(horizontal, vertical int) error {
	if horizontal < 0 {
		return New(ErrCodeInvalidFlag, "horizontal margin cannot be negative, got %d", horizontal)
	}
	if vertical < 0 {
		return New(ErrCodeInvalidFlag, "vertical margin cannot be negative, got %d", vertical)
	}
	return nil
}

// ValidateColumns checks a fixed --columns value. Zero means "derive from
// the terminal width".
func ValidateColumns(columns int) error {
	if columns < 0 {
		return New(ErrCodeInvalidFlag, "columns cannot be negative, got %d", columns)
	}
	return nil
}
