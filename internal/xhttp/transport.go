package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/tock/internal/version"
)

type tockTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*tockTransport)(nil)

func (t *tockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(UserAgent, UserAgentPrefix+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard tock headers.
func NewTransport() http.RoundTripper {
	return &tockTransport{base: http.DefaultTransport}
}
