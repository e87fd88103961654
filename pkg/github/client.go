package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://api.github.com"

// userAgent identifies this client; the GitHub API rejects requests that
// carry no User-Agent header.
const userAgent = "ghrepo"

// Client fetches repository metadata from the GitHub API. It issues one
// request per call: no caching, no retries, and no timeout of its own.
// Deadlines and cancellation come from the caller's context.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits).
func NewClient(token string) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		token:      token,
	}
}

// DefaultClient is the unauthenticated client used by the package-level
// GetRepoInfo and GetRepoInfoAsync.
var DefaultClient = NewClient("")

// GetRepoInfo fetches metadata for a single repository, blocking until the
// response arrives or ctx is done.
//
// owner and repo are passed through as URL path segments; the API decides
// whether they name an existing repository. Failures are typed:
// *RequestError for transport errors, *StatusError for non-2xx responses,
// *DecodeError for malformed bodies (see the package sentinels).
func (c *Client) GetRepoInfo(ctx context.Context, owner, repo string) (*RepoInfo, error) {
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newStatusError(resp)
	}

	var info RepoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &info, nil
}

// Result carries the outcome of an asynchronous fetch.
type Result struct {
	Info *RepoInfo
	Err  error
}

// GetRepoInfoAsync fetches metadata without blocking the caller. It runs
// GetRepoInfo in a new goroutine and returns a channel that delivers the
// single Result and is then closed. The channel is buffered, so the
// goroutine does not leak if the caller abandons the result.
func (c *Client) GetRepoInfoAsync(ctx context.Context, owner, repo string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		info, err := c.GetRepoInfo(ctx, owner, repo)
		ch <- Result{Info: info, Err: err}
	}()
	return ch
}

// GetRepoInfo fetches repository metadata using DefaultClient.
func GetRepoInfo(ctx context.Context, owner, repo string) (*RepoInfo, error) {
	return DefaultClient.GetRepoInfo(ctx, owner, repo)
}

// GetRepoInfoAsync fetches repository metadata asynchronously using DefaultClient.
func GetRepoInfoAsync(ctx context.Context, owner, repo string) <-chan Result {
	return DefaultClient.GetRepoInfoAsync(ctx, owner, repo)
}

// setHeaders sets the common headers for GitHub API requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// newStatusError builds a StatusError from a non-2xx response, picking up
// the message GitHub includes in JSON error bodies.
func newStatusError(resp *http.Response) *StatusError {
	se := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return se
	}
	var apiErr struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &apiErr) == nil {
		se.Message = apiErr.Message
	}
	return se
}
