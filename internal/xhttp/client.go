package xhttp

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every request made by a client from NewHTTPClient.
const DefaultTimeout = 10 * time.Second

type ClientOption func(*http.Client)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *http.Client) { c.Timeout = d }
}

func NewHTTPClient(opts ...ClientOption) *http.Client {
	c := &http.Client{
		Transport: NewTransport(),
		Timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
