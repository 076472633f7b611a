package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable code returned to API callers.
type ErrorCode string

const (
	CodeInvalidURL       ErrorCode = "INVALID_URL"
	CodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	CodeFetchFailed      ErrorCode = "FETCH_FAILED"
	CodeGenerationFailed ErrorCode = "GENERATION_FAILED"
	CodeInvalidQuizID    ErrorCode = "INVALID_QUIZ_ID"
	CodeInvalidAnswers   ErrorCode = "INVALID_ANSWERS"
	CodeQuizNotFound     ErrorCode = "QUIZ_NOT_FOUND"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// DomainError is the error shape surfaced at the HTTP boundary.
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidURLError(message string) *DomainError {
	return NewError(CodeInvalidURL, message, nil)
}

func NewInvalidRequestError(message string) *DomainError {
	return NewError(CodeInvalidRequest, message, nil)
}

func NewFetchFailedError(err error) *DomainError {
	return NewError(CodeFetchFailed, err.Error(), err)
}

func NewGenerationFailedError(err error) *DomainError {
	return NewError(CodeGenerationFailed, err.Error(), err)
}

func NewInvalidQuizIDError(message string) *DomainError {
	return NewError(CodeInvalidQuizID, message, nil)
}

func NewInvalidAnswersError(message string) *DomainError {
	return NewError(CodeInvalidAnswers, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil)
}

// NewInternalError keeps the cause for logging; the boundary never shows it to callers.
func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

// ValidationError reports bad or missing caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrFetchTimeout is wrapped by every FetchError caused by the fetch deadline.
var ErrFetchTimeout = errors.New("request timed out")

// FetchError reports that a page could not be retrieved.
type FetchError struct {
	URL        string
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("failed to fetch content: %v", e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("failed to fetch content: HTTP status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("failed to fetch content: %v", e.Err)
	default:
		return "failed to fetch content"
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether the fetch was aborted by its deadline.
func (e *FetchError) IsTimeout() bool {
	return e.Timeout
}

// GenerationError reports a failed model call or an unusable model response.
// Question is the 1-based position of the offending question, zero when the
// failure is not tied to one.
type GenerationError struct {
	Question int
	Message  string
	Err      error
}

func (e *GenerationError) Error() string {
	msg := e.Message
	if e.Question > 0 {
		msg = fmt.Sprintf("Question %d: %s", e.Question, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return "failed to generate quiz: " + msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewGenerationError(message string, err error) *GenerationError {
	return &GenerationError{Message: message, Err: err}
}

func NewQuestionError(number int, message string) *GenerationError {
	return &GenerationError{Question: number, Message: message}
}

// ErrQuizNotFound is returned by repositories when no quiz is stored under an ID.
var ErrQuizNotFound = errors.New("quiz not found")
