package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
)

// ErrMalformedEnvelope is returned when a payload is not a well-formed
// success or failure envelope.
var ErrMalformedEnvelope = errors.New("response: malformed envelope")

// Envelope is the uniform API body: either {ok:true,data} or {ok:false,error}.
// Build it with Success or Failure; the zero value is a failure.
type Envelope[T any] struct {
	ok   bool
	data T
	err  *apperror.AppError
}

func Success[T any](data T) Envelope[T] {
	return Envelope[T]{ok: true, data: data}
}

func Failure[T any](err *apperror.AppError) Envelope[T] {
	if err == nil {
		err = apperror.ErrInternal
	}
	return Envelope[T]{err: err}
}

func (e Envelope[T]) OK() bool                { return e.ok }
func (e Envelope[T]) Data() T                 { return e.data }
func (e Envelope[T]) Err() *apperror.AppError { return e.err }

type successBody[T any] struct {
	OK   bool `json:"ok"`
	Data T    `json:"data"`
}

type failureBody struct {
	OK    bool               `json:"ok"`
	Error *apperror.AppError `json:"error"`
}

func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	if e.ok {
		return json.Marshal(successBody[T]{OK: true, Data: e.data})
	}
	err := e.err
	if err == nil {
		err = apperror.ErrInternal
	}
	return json.Marshal(failureBody{OK: false, Error: err})
}

func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var raw struct {
		OK    *bool           `json:"ok"`
		Data  json.RawMessage `json:"data"`
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.OK == nil {
		return fmt.Errorf("%w: missing ok", ErrMalformedEnvelope)
	}

	hasData, hasError := raw.Data != nil, raw.Error != nil
	if hasData == hasError {
		return fmt.Errorf("%w: exactly one of data and error must be present", ErrMalformedEnvelope)
	}

	if *raw.OK {
		if !hasData {
			return fmt.Errorf("%w: success without data", ErrMalformedEnvelope)
		}
		var data T
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return err
		}
		*e = Success(data)
		return nil
	}

	if !hasError {
		return fmt.Errorf("%w: failure without error", ErrMalformedEnvelope)
	}
	var appErr *apperror.AppError
	if err := json.Unmarshal(raw.Error, &appErr); err != nil {
		return err
	}
	if appErr == nil {
		return fmt.Errorf("%w: null error", ErrMalformedEnvelope)
	}
	*e = Failure[T](appErr)
	return nil
}

// Decode reads one envelope from r.
func Decode[T any](r io.Reader) (Envelope[T], error) {
	var env Envelope[T]
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return Envelope[T]{}, err
	}
	return env, nil
}
