package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const maxErrorBody = 64 << 10

// Option configures a service client.
type Option func(*base)

// WithHTTPClient overrides the HTTP client used for requests. The client
// is never modified; WithTimeout applies to a copy.
func WithHTTPClient(h *http.Client) Option {
	return func(b *base) {
		if h != nil {
			b.httpClient = h
		}
	}
}

// WithTimeout sets the request timeout, whichever HTTP client is used.
func WithTimeout(d time.Duration) Option {
	return func(b *base) {
		b.timeout = d
	}
}

// WithBearerToken sends token in the Authorization header of every request.
func WithBearerToken(token string) Option {
	return func(b *base) {
		b.token = token
	}
}

type base struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	token      string
}

func newBase(baseURL string, opts ...Option) (*base, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("client: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("client: invalid base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("client: base URL %q must be absolute", baseURL)
	}

	b := &base{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}

	hc := *b.httpClient
	if b.timeout > 0 {
		hc.Timeout = b.timeout
	}
	b.httpClient = &hc
	return b, nil
}

type request struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	accept      string
}

// do sends req and returns the response for 2xx statuses; any other status
// becomes an *HTTPError and the body is closed.
func (b *base) do(ctx context.Context, req request) (*http.Response, error) {
	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, b.resolve(req.path, req.query), body)
	if err != nil {
		return nil, err
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.accept != "" {
		httpReq.Header.Set("Accept", req.accept)
	}
	if b.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.token)
	}

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("client: %s %s: %w", req.method, req.path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: bytes.TrimSpace(data)}
	}
	return resp, nil
}

// send performs req and discards the response body.
func (b *base) send(ctx context.Context, req request) (http.Header, error) {
	resp, err := b.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Header, nil
}

func (b *base) resolve(path string, q url.Values) string {
	ref := &url.URL{Path: strings.TrimSuffix(b.baseURL.Path, "/") + path}
	if len(q) > 0 {
		ref.RawQuery = q.Encode()
	}
	return b.baseURL.ResolveReference(ref).String()
}

// IDFromLocation returns the identifier in the trailing path segment of a Location header.
func IDFromLocation(location string) (int, error) {
	if location == "" {
		return 0, errors.New("client: response has no Location header")
	}
	u, err := url.Parse(location)
	if err != nil {
		return 0, fmt.Errorf("client: invalid Location %q: %w", location, err)
	}
	path := strings.TrimSuffix(u.Path, "/")
	segment := path[strings.LastIndex(path, "/")+1:]
	id, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("client: Location %q does not end in an ID", location)
	}
	return id, nil
}

func itemPath(collection string, id int) string {
	return collection + "/" + strconv.Itoa(id)
}
