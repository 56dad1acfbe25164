package services

// ValidationError marks input that fails a field rule: missing title or type,
// or a score outside the accepted range. Handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// FormatError marks a genre payload that is not a valid JSON array of
// strings. Handlers map it to a 400.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

func newFormatError(msg string) error {
	return &FormatError{Message: msg}
}
