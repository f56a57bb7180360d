package services

// FieldError reports a validation failure against a single input field.
// Handlers surface Message as form feedback next to Field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldError(field string, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
