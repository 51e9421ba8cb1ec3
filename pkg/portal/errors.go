package portal

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Kind classifies a request failure so callers can pick a recovery strategy
// without string-matching messages.
type Kind int

const (
	// KindConfig means no branch was activated before the request was issued.
	// The caller must select a branch first; retrying changes nothing.
	KindConfig Kind = iota

	// KindTimeout means the fixed request timeout elapsed and the in-flight
	// call was aborted. Worth a retry.
	KindTimeout

	// KindNetwork means the transport failed before any response arrived
	// (offline, DNS, connection refused). Worth a retry after checking
	// connectivity.
	KindNetwork

	// KindHTTP means the server answered with a non-2xx status. StatusCode
	// carries the actual status.
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTimeout:
		return "timeout"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	default:
		return "unknown"
	}
}

const (
	msgNoBranch      = "no branch selected: choose a branch before making requests"
	msgTimeout       = "the request timed out, please try again"
	msgNetwork       = "could not reach the server, please check your connection"
	msgGenericServer = "the server returned an unexpected error"
)

type (
	// Error is the one failure shape every portal call produces. StatusCode is
	// the HTTP status for KindHTTP and 0 for every other kind, matching what
	// the backend's own error envelope reports.
	Error struct {
		Kind       Kind
		StatusCode int
		Message    string
		Details    any
	}
)

func (e *Error) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("portal: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("portal: %s: %s", e.Kind, e.Message)
}

// Retryable reports whether repeating the same call can plausibly succeed.
func (e *Error) Retryable() bool {
	return e.Kind == KindTimeout || e.Kind == KindNetwork ||
		(e.Kind == KindHTTP && e.StatusCode >= 500)
}

func newConfigError() *Error {
	return &Error{Kind: KindConfig, Message: msgNoBranch}
}

func newTimeoutError() *Error {
	return &Error{Kind: KindTimeout, Message: msgTimeout}
}

func newNetworkError(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork, Details: cause.Error()}
}

// newHTTPError extracts the server-supplied message from the error body when
// it parses as JSON ("message", falling back to "error"), else uses a generic
// message. StatusCode is always the real HTTP status.
func newHTTPError(status int, body []byte) *Error {
	e := &Error{Kind: KindHTTP, StatusCode: status, Message: msgGenericServer}

	if !gjson.ValidBytes(body) {
		return e
	}
	if m := gjson.GetBytes(body, "message"); m.Exists() && m.String() != "" {
		e.Message = m.String()
	} else if m := gjson.GetBytes(body, "error"); m.Exists() && m.String() != "" {
		e.Message = m.String()
	}
	if d := gjson.GetBytes(body, "details"); d.Exists() {
		e.Details = d.Value()
	}
	return e
}

// AsError unwraps err into a *Error when it is one.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
