package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("client: not found")
	ErrBadRequest = errors.New("client: bad request")
)

// HTTPError represents a non-2xx HTTP response returned by the server.
// It matches ErrNotFound for 404 and ErrBadRequest for 400 under errors.Is.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, string(e.Body))
}

func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrBadRequest
	}
	return nil
}
