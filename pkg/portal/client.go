// Package portal implements the HTTP client every domain service goes
// through: it builds the request against the active branch base URL, applies
// the fixed timeout, and maps every failure into a single *Error shape.
package portal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"traineeportal/pkg/tools/json"
)

type (
	Client struct {
		cfg *Config
		hc  *http.Client
	}

	// Request describes one call. It is built per call and not retained.
	Request struct {
		Method  string            // default GET
		Path    string            // appended to the active base URL
		Headers map[string]string // caller headers win over defaults
		Body    any               // JSON-serialized when non-nil
	}
)

func New(cfg *Config) *Client {
	return &Client{
		cfg: cfg,
		hc:  &http.Client{},
	}
}

func (c *Client) Config() *Config {
	return c.cfg
}

// Do executes r and decodes a 2xx JSON body into T verbatim. Schema
// validation is the calling service's job, not this layer's. Every failure
// path yields a *Error: config (no branch), timeout, network, or HTTP.
func Do[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var out T

	body, err := c.do(ctx, r)
	if err != nil {
		return out, err
	}
	if len(body) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, InvalidPayload(err)
	}
	return out, nil
}

// Get issues an authorized GET when token is non-empty, anonymous otherwise.
func Get[T any](ctx context.Context, c *Client, path, token string) (T, error) {
	return Do[T](ctx, c, Request{
		Method:  http.MethodGet,
		Path:    path,
		Headers: bearer(token),
	})
}

// Post issues a POST with a JSON body.
func Post[T any](ctx context.Context, c *Client, path string, body any, token string) (T, error) {
	return Do[T](ctx, c, Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: bearer(token),
		Body:    body,
	})
}

// Download streams a 2xx response body to w and returns the number of bytes
// copied. The fixed timeout covers the whole transfer.
func (c *Client) Download(ctx context.Context, path, token string, w io.Writer) (int64, error) {
	res, err := c.send(ctx, Request{
		Method:  http.MethodGet,
		Path:    path,
		Headers: bearer(token),
	})
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return 0, newHTTPError(res.StatusCode, body)
	}

	n, err := io.Copy(w, res.Body)
	if err != nil {
		return n, c.classify(err)
	}
	return n, nil
}

func (c *Client) do(ctx context.Context, r Request) ([]byte, error) {
	res, err := c.send(ctx, r)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, c.classify(err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, newHTTPError(res.StatusCode, body)
	}

	return body, nil
}

// send captures the base URL once, before the HTTP call: a branch switch
// while this request is in flight does not retarget it.
func (c *Client) send(ctx context.Context, r Request) (*http.Response, error) {
	base := c.cfg.BaseURL()
	if base == "" {
		return nil, newConfigError()
	}

	u, err := url.JoinPath(base, r.Path)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Message: fmt.Sprintf("invalid base URL %q", base), Details: err.Error()}
	}

	var payload io.Reader
	if r.Body != nil {
		raw, err := json.Marshal(r.Body)
		if err != nil {
			return nil, InvalidPayload(err)
		}
		payload = bytes.NewReader(raw)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())

	req, err := http.NewRequestWithContext(ctx, method(r.Method), u, payload)
	if err != nil {
		cancel()
		return nil, InvalidPayload(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		cancel()
		return nil, c.classify(err)
	}

	// The timer must outlive this function so it can still abort a slow body
	// read; tie it to the body instead.
	res.Body = &cancelReadCloser{rc: res.Body, cancel: cancel}
	return res, nil
}

// classify splits transport failures into the timeout and network variants.
// Both keep StatusCode 0: only an HTTP answer carries a real status.
func (c *Client) classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return newTimeoutError()
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return newTimeoutError()
	}
	return newNetworkError(err)
}

// InvalidPayload reports a response body that could not be decoded. It rides
// the network variant: from the caller's point of view the server did not
// deliver a usable response, and a retry is reasonable.
func InvalidPayload(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: "the server sent an invalid response", Details: cause.Error()}
}

func method(m string) string {
	if m == "" {
		return http.MethodGet
	}
	return m
}

func bearer(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

type (
	cancelReadCloser struct {
		rc     io.ReadCloser
		cancel context.CancelFunc
	}
)

func (c *cancelReadCloser) Read(p []byte) (int, error) {
	return c.rc.Read(p)
}

func (c *cancelReadCloser) Close() error {
	c.cancel()
	return c.rc.Close()
}
