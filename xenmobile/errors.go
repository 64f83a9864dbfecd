package xenmobile

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedResponse - the server response is missing an expected field
var ErrMalformedResponse = errors.New("response missing expected fields")

// AuthenticationError - login against the XenMobile server failed. Always
// fatal: the pipeline must not proceed without a token.
type AuthenticationError struct {
	Host string
	Err  error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authenticating against %s: %v", e.Host, e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// FetchError - a resource fetch failed. Fatal for the three top-level
// resources, skip-and-continue for per-application detail fetches.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
