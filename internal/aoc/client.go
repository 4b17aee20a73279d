// Package aoc is the thin client for the puzzle service: it fetches puzzle
// pages and inputs, submits answers, and keeps the local caches the rest of
// the CLI reads (inputs, answer ledger, submission journal).
package aoc

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production puzzle service.
const DefaultBaseURL = "https://adventofcode.com"

// userAgent identifies this tool to the service, as its maintainer asks of
// automated clients.
const userAgent = "github.com/MyNameIs-13/aockit (hobby scaffold)"

const sessionCookie = "session"

// Client talks to the puzzle service with a session token.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different service, used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.base = strings.TrimRight(base, "/")
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient builds a client around a session token.
func NewClient(token string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("aoc: session token is required")
	}
	c := &Client{
		base:  DefaultBaseURL,
		token: token,
		http:  newHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// newHTTPClient returns a client with bounded transport timeouts; a context
// deadline can still cut any request shorter.
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	}
	return &http.Client{
		Transport: tr,
		Timeout:   30 * time.Second,
	}
}

// Input fetches the user-specific puzzle input for a day.
func (c *Client) Input(ctx context.Context, year, day int) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("/%d/day/%d/input", year, day))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// PuzzlePage fetches the raw HTML of a day's puzzle page.
func (c *Client) PuzzlePage(ctx context.Context, year, day int) ([]byte, error) {
	return c.get(ctx, fmt.Sprintf("/%d/day/%d", year, day))
}

// Puzzle fetches and parses a day's puzzle page.
func (c *Client) Puzzle(ctx context.Context, year, day int) (*Puzzle, error) {
	page, err := c.PuzzlePage(ctx, year, day)
	if err != nil {
		return nil, err
	}
	puzzle, err := ParsePuzzlePage(page)
	if err != nil {
		return nil, err
	}
	puzzle.Year = year
	puzzle.Day = day
	return puzzle, nil
}

// Submit posts an answer for a day and level (1 or 2) and classifies the
// service's response.
func (c *Client) Submit(ctx context.Context, year, day, level int, answer string) (SubmitResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return SubmitResult{}, fmt.Errorf("aoc: refusing to submit an empty answer")
	}
	form := url.Values{}
	form.Set("level", fmt.Sprint(level))
	form.Set("answer", answer)
	body, err := c.post(ctx, fmt.Sprintf("/%d/day/%d/answer", year, day), form)
	if err != nil {
		return SubmitResult{}, err
	}
	return ParseSubmitResponse(body)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("aoc: build request %s: %w", path, err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("aoc: build request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", userAgent)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.token})
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aoc: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("aoc: read response for %s: %w", req.URL.Path, err)
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("aoc: %s: puzzle not available yet", req.URL.Path)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusInternalServerError:
		return nil, fmt.Errorf("aoc: %s: status %d (is the session token still valid?)", req.URL.Path, resp.StatusCode)
	default:
		return nil, fmt.Errorf("aoc: %s: unexpected status %d", req.URL.Path, resp.StatusCode)
	}
}
