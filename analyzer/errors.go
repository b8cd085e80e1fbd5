package analyzer

import (
	"errors"
)

// Error codes for document processing failures
const (
	CodeEmptyOrTooShort = "empty_or_too_short"
	CodeDecodeFailure   = "decode_failure"
)

// DocumentError is a pipeline-stage failure. Stages downstream of a failed
// stage never re-validate; the first error is returned unchanged to the
// caller and rendered by RenderError.
type DocumentError struct {
	Code    string
	Message string
}

func (e *DocumentError) Error() string {
	return e.Message
}

// HasCode reports whether err is a DocumentError carrying the given code
func HasCode(err error, code string) bool {
	var de *DocumentError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
