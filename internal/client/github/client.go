package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/tock/internal/xhttp"
)

const (
	defaultBaseURL = "https://api.github.com"
	acceptHeader   = "application/vnd.github+json"
)

// ErrNoRelease is returned when the repository has no published release.
var ErrNoRelease = errors.New("no published release")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

func WithBaseURL(url string) Option {
	return func(client *Client) { client.baseURL = url }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: xhttp.NewHTTPClient(),
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Release struct {
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
}

// GetLatestRelease fetches the newest non-prerelease, non-draft release.
func (c *Client) GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.baseURL, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(xhttp.Accept, acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s/%s: %w", owner, repo, ErrNoRelease)
	default:
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var release Release
	if err := go_json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &release, nil
}
