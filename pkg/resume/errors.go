package resume

import "errors"

// Distinct failure categories for the document boundary. Handlers map these
// to user-visible HTTP statuses instead of a generic 500.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")
	ErrParse             = errors.New("failed to parse document")
	ErrNotFound          = errors.New("resume not found")
)
