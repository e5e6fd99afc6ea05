package apperror

import (
	"encoding/json"
	"fmt"
)

// AppError is the structured failure carried by a failed envelope.
// Values are immutable; derivations return copies.
type AppError struct {
	kind      Kind
	message   string
	requestID string
	err       error // wrapped cause, never serialized
}

type wireError struct {
	Code      Kind   `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// New creates an AppError. requestID is optional; only the first value is used.
func New(kind Kind, message string, requestID ...string) *AppError {
	e := &AppError{
		kind:    kind,
		message: message,
	}
	if len(requestID) > 0 {
		e.requestID = requestID[0]
	}
	return e
}

// Wrap creates an AppError that keeps err as its cause for logging and errors.Is/As.
func Wrap(err error, kind Kind, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		kind:    kind,
		message: message,
		err:     err,
	}
}

func (e *AppError) Kind() Kind        { return e.kind }
func (e *AppError) Message() string   { return e.message }
func (e *AppError) RequestID() string { return e.requestID }
func (e *AppError) HTTPStatus() int   { return HTTPStatus(e.kind) }

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error { return e.err }

// WithRequestID returns a copy of e correlated with requestID.
func (e *AppError) WithRequestID(requestID string) *AppError {
	cp := *e
	cp.requestID = requestID
	return &cp
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

// Is matches on kind and message so sentinels still match after WithRequestID.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t == nil {
		return false
	}
	return e.kind == t.kind && e.message == t.message
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireError{
		Code:      e.kind,
		Message:   e.message,
		RequestID: e.requestID,
	})
}

func (e *AppError) UnmarshalJSON(data []byte) error {
	var w wireError
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Code == "" {
		return fmt.Errorf("apperror: missing error code")
	}
	*e = AppError{
		kind:      w.Code,
		message:   w.Message,
		requestID: w.RequestID,
	}
	return nil
}
