package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultRequestTimeout - applied to every XenMobile API call
const DefaultRequestTimeout = 60 * time.Second

type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient - new HTTP client with the given request timeout. The
// backup pipeline never retries, so a request that times out fails the
// fetch it belongs to.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do - executes the HTTP request once, surfacing timeouts with a clear
// message so the caller can name the failing resource
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		if IsTimeout(err) {
			return nil, errors.Wrap(err, "request timed out")
		}
		return nil, err
	}

	return resp, nil
}

// IsTimeout returns true if the error is a network timeout
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}
