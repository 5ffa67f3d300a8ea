package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/staffscore/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrNotLoggedIn  = errors.New("not logged in")
)

// APIError is a non-2xx reply from the server.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return common.ErrDuplicateEmail
	default:
		return nil
	}
}

// expired reports whether the server rejected the access token for age.
func (e *APIError) expired() bool {
	return e.Status == http.StatusUnauthorized && e.Message == common.ErrTokenExpired.Error()
}
