package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code, message string, cause ...error) *AppError {
	var c error
	if len(cause) > 0 {
		c = cause[0]
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   c,
	}
}

var (
	ErrConfigInvalid = &AppError{Code: "CONFIG_001", Message: "invalid configuration"}
	ErrAPIKeyMissing = &AppError{Code: "CONFIG_002", Message: "ANTHROPIC_API_KEY is not configured"}

	ErrCompletionFailed   = &AppError{Code: "EXTRACT_001", Message: "extraction service call failed"}
	ErrUnparsableResponse = &AppError{Code: "EXTRACT_002", Message: "could not interpret AI response"}
	ErrNoDocument         = &AppError{Code: "EXTRACT_003", Message: "no PDF uploaded"}
	ErrNotPDF             = &AppError{Code: "EXTRACT_004", Message: "file must be a PDF"}

	ErrReviewNotFound = &AppError{Code: "REVIEW_001", Message: "review snapshot not found"}

	ErrRenderFailed = &AppError{Code: "RENDER_001", Message: "review PDF generation failed"}

	ErrBadRequest = &AppError{Code: "GEN_001", Message: "bad request"}
	ErrInternal   = &AppError{Code: "GEN_002", Message: "internal error"}
)

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}
