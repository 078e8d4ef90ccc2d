// Package github implements a minimal client for creating issues through the
// GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/croneill/issuepost/internal/transport"
)

const (
	defaultAPIBaseURL  = "https://api.github.com"
	defaultHTMLBaseURL = "https://github.com"
	acceptMediaType    = "application/vnd.github.v3+json"
	defaultTimeout     = 10 * time.Second
)

// Client creates issues in a single repository. The underlying HTTP session is
// configured once at construction and reused for the client's lifetime. A
// Client is safe for sequential reuse; concurrent use of one Client is not
// guaranteed — callers needing concurrent submissions should use separate
// clients or synchronize externally.
type Client struct {
	owner string
	repo  string

	apiBaseURL  string
	htmlBaseURL string
	timeout     time.Duration

	httpClient *http.Client
}

// ClientOption adjusts client construction.
type ClientOption func(*clientOptions)

type clientOptions struct {
	proxies     map[string]string
	timeout     time.Duration
	apiBaseURL  string
	htmlBaseURL string
}

// WithProxy routes requests through the given per-scheme proxies, e.g.
// {"https": "http://proxy.internal:3128"}.
func WithProxy(proxies map[string]string) ClientOption {
	return func(o *clientOptions) { o.proxies = proxies }
}

// WithTimeout sets the default per-call timeout. Create applies it only when
// the caller's context carries no deadline of its own.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) { o.timeout = d }
}

// WithBaseURL points the client at an alternate API host.
func WithBaseURL(u string) ClientOption {
	return func(o *clientOptions) { o.apiBaseURL = u }
}

// WithHTMLBaseURL overrides the host used to synthesize repository URLs.
func WithHTMLBaseURL(u string) ClientOption {
	return func(o *clientOptions) { o.htmlBaseURL = u }
}

// NewClient validates the credentials and repository coordinates and builds
// the reusable session. All returned errors wrap ErrInvalidConfig and occur
// before any network activity.
func NewClient(token, owner, repo string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: github token is required", ErrInvalidConfig)
	}
	if owner == "" {
		return nil, fmt.Errorf("%w: repository owner is required", ErrInvalidConfig)
	}
	if repo == "" {
		return nil, fmt.Errorf("%w: repository name is required", ErrInvalidConfig)
	}

	options := clientOptions{
		timeout:     defaultTimeout,
		apiBaseURL:  defaultAPIBaseURL,
		htmlBaseURL: defaultHTMLBaseURL,
	}
	for _, opt := range opts {
		opt(&options)
	}

	base, err := transport.NewBaseTransport(options.proxies)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// TokenType "token" yields the "Authorization: token <credential>" scheme
	// the issues API expects for personal access tokens
	tokenSource := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: "token"},
	)
	session := &http.Client{
		Transport: &oauth2.Transport{
			Source: tokenSource,
			Base:   transport.WithSessionHeaders(base, acceptMediaType),
		},
	}

	return &Client{
		owner:       owner,
		repo:        repo,
		apiBaseURL:  options.apiBaseURL,
		htmlBaseURL: options.htmlBaseURL,
		timeout:     options.timeout,
		httpClient:  session,
	}, nil
}

// issueRequest is the wire form of an Issue. Labels and assignees always
// serialize, as empty arrays when unset.
type issueRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
}

type issueResponse struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
	HTMLURL   string `json:"html_url"`
	User      *struct {
		Login string `json:"login"`
	} `json:"user"`
}

// Create submits the issue and returns the created issue's details. Failures
// are reported as *SubmissionError and are terminal; no call is ever retried.
// Creation is not idempotent: two calls with identical input create two
// distinct issues.
func (c *Client) Create(ctx context.Context, iss Issue) (*IssueResult, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload := issueRequest{
		Title:     iss.Title,
		Body:      iss.Body,
		Labels:    iss.Labels,
		Assignees: iss.Assignees,
	}
	if payload.Labels == nil {
		payload.Labels = []string{}
	}
	if payload.Assignees == nil {
		payload.Assignees = []string{}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SubmissionError{Message: fmt.Sprintf("Request failed: %v", err)}
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &SubmissionError{Message: fmt.Sprintf("Request failed: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &SubmissionError{Message: fmt.Sprintf("Request failed: %v", requestFailureDetail(err))}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SubmissionError{Message: fmt.Sprintf("Request failed: %v", err)}
	}

	switch {
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, &SubmissionError{
			Message:      "HTTP error occurred while creating the issue.",
			StatusCode:   resp.StatusCode,
			ResponseBody: string(respBody),
		}
	case resp.StatusCode != http.StatusCreated:
		return nil, &SubmissionError{
			Message:      "Failed to create issue.",
			StatusCode:   resp.StatusCode,
			ResponseBody: string(respBody),
		}
	}

	var created issueResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, &SubmissionError{
			Message:      fmt.Sprintf("Failed to parse issue response: %v", err),
			StatusCode:   resp.StatusCode,
			ResponseBody: string(respBody),
		}
	}
	// A 201 without these fields would produce a result pointing at issue #0
	if created.ID == 0 || created.Number == 0 || created.HTMLURL == "" {
		return nil, &SubmissionError{
			Message:      "Failed to parse issue response: required fields missing.",
			StatusCode:   resp.StatusCode,
			ResponseBody: string(respBody),
		}
	}

	result := &IssueResult{
		RepositoryURL: fmt.Sprintf("%s/%s/%s", c.htmlBaseURL, c.owner, c.repo),
		IssueURL:      created.HTMLURL,
		ID:            created.ID,
		Number:        created.Number,
		Title:         created.Title,
		State:         created.State,
		CreatedAt:     created.CreatedAt,
	}
	if created.User != nil {
		result.Author = created.User.Login
	}

	return result, nil
}

// requestFailureDetail strips the method/URL preamble that http.Client wraps
// around transport errors, leaving the underlying cause.
func requestFailureDetail(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err
	}
	return err
}
