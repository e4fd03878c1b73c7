// Package httpx is a thin boundary adapter between net/http and a
// functional.CompositeResiliencePolicy, translating HTTP status codes into
// Transient/Permanent classification. It is deliberately minimal: the core
// resilience engine has no notion of HTTP at all.
package httpx

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/darkpeak/functional"
)

type (
	// ErrorClass tells the resilience layer how to treat an HTTP status
	// code.
	ErrorClass int

	// Classifier maps an HTTP status code to an ErrorClass.
	//
	// Pattern: Strategy — caller injects classification logic without
	// modifying the adapter.
	Classifier func(statusCode int) ErrorClass

	// StatusError is returned when the Classifier marks a status code as
	// Transient or Permanent. The response remains accessible for header
	// inspection.
	StatusError struct {
		Response   *http.Response
		StatusCode int
	}

	// Client wraps an http.Client with a composite resilience policy and
	// HTTP status code classification.
	//
	// Pattern: Adapter — bridges net/http and the resilience policy by
	// translating HTTP status codes into Transient/Permanent
	// classification.
	Client struct {
		hc     *http.Client
		policy *functional.CompositeResiliencePolicy[*http.Response, error]
		cl     Classifier
	}
)

const (
	// StatusOK means the request succeeded (e.g. 2xx).
	StatusOK ErrorClass = iota
	// Transient means the error is retriable (e.g. 429, 503).
	Transient
	// Permanent means the error is non-retriable (e.g. 400).
	Permanent
)

// Error returns a human-readable description of the status error.
func (e *StatusError) Error() string {
	return "http status " + strconv.Itoa(e.StatusCode)
}

// NewClient builds a Client that executes requests through policy,
// classifying responses with cl.
func NewClient(hc *http.Client, policy *functional.CompositeResiliencePolicy[*http.Response, error], cl Classifier) *Client {
	return &Client{hc: hc, policy: policy, cl: cl}
}

// Do executes req through the resilience policy. On success it returns the
// response and a nil error; on failure it returns a nil response and the
// error. When the Classifier marks a response Transient or Permanent, that
// response is carried in a *StatusError accessible via errors.As; a
// Transient response's body has already been drained and closed.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	result := c.policy.Execute(ctx, func(ctx context.Context) functional.Result[*http.Response, error] {
		resp, err := c.hc.Do(req.WithContext(ctx))
		if err != nil {
			return functional.Failure[*http.Response](err)
		}

		switch c.cl(resp.StatusCode) {
		case Transient:
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			return functional.Failure[*http.Response](functional.Transient(&StatusError{Response: resp, StatusCode: resp.StatusCode}))
		case Permanent:
			return functional.Failure[*http.Response](functional.Permanent(&StatusError{Response: resp, StatusCode: resp.StatusCode}))
		default:
			return functional.Success[*http.Response, error](resp)
		}
	})

	if result.IsSuccess() {
		return result.GetOrDefault(nil), nil
	}
	return nil, result.Error()
}
