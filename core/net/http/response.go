package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/kochabx/unsplash/errors"
)

// maxDrain bounds how much of an unread body is discarded before closing it
const maxDrain = 64 << 10

// Result is the outcome of one call: Data on success, Error on failure, never both.
type Result[T any] struct {
	Data  T             `json:"data"`
	Error *errors.Error `json:"error,omitempty"`
}

// Success wraps data
func Success[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

// Failure wraps err. A nil err still yields a failure carrying errors.DefaultMessage.
func Failure[T any](err *errors.Error) Result[T] {
	if err == nil {
		err = errors.New(0, errors.DefaultMessage)
	}
	return Result[T]{Error: err}
}

// OK reports whether the call succeeded
func (r Result[T]) OK() bool {
	return r.Error == nil
}

// Unwrap returns the data and the failure as a plain error
func (r Result[T]) Unwrap() (T, error) {
	if r.Error != nil {
		var zero T
		return zero, r.Error
	}
	return r.Data, nil
}

// Parse normalizes an exchange into a Result. Transport errors, non-2xx statuses and
// undecodable bodies all come back as failures; Parse itself never fails. An empty
// errorMessage falls back to errors.DefaultMessage for status failures.
func Parse[T any](resp *http.Response, err error, errorMessage string) Result[T] {
	if err != nil {
		closeBody(resp)
		return Failure[T](errors.TransportFailure(err))
	}
	if resp == nil {
		return Failure[T](errors.TransportFailure(io.ErrUnexpectedEOF))
	}
	defer closeBody(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Failure[T](errors.StatusFailure(resp.StatusCode, errorMessage, StatusText(resp)))
	}

	var data T
	if resp.StatusCode == http.StatusNoContent {
		return Success(data)
	}

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Failure[T](errors.DecodeFailure(err))
	}
	return Success(data)
}

// StatusText returns the reason phrase the server sent, or the standard one
func StatusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text, ok := strings.CutPrefix(resp.Status, code+" "); ok && text != "" {
		return text
	}
	if resp.Status != "" && resp.Status != code {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}

// closeBody drains a bounded amount so the connection can be reused, then closes
func closeBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.CopyN(io.Discard, resp.Body, maxDrain)
	_ = resp.Body.Close()
}
