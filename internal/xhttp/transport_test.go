package xhttp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewHTTPClient_SetsUserAgent(t *testing.T) {
	t.Parallel()

	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(UserAgent)
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(WithTimeout(time.Second))
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	_ = resp.Body.Close()

	if !strings.HasPrefix(got, UserAgentPrefix) {
		t.Errorf("User-Agent = %q, want prefix %q", got, UserAgentPrefix)
	}
	if client.Timeout != time.Second {
		t.Errorf("Timeout = %v, want %v", client.Timeout, time.Second)
	}
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	t.Parallel()

	if got := NewHTTPClient().Timeout; got != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", got, DefaultTimeout)
	}
}
