package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mzansi-thrift/storefront/client/session"
)

// Option configures a Client during construction in New.
//
// Transport wrappers (debug logging, auth token) are installed by New after
// every option has run, so option order does not matter.
type Option func(*Client) error

// WithHTTPClient uses a shallow copy of hc for all requests. The copy shares
// hc's Transport and, when hc.Jar is set, the same cookie jar: session
// cookies set through this client (including SetCookies and logout) are
// visible to every other user of that jar. A client without a jar gets a
// fresh one, since the API authenticates through its session cookie.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		clone := *hc
		c.http = &clone
		return nil
	}
}

// WithTimeout bounds every request, including reading the response body.
// The default is 50s. The value must be greater than zero.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged at debug level when enabled is true.
//
// Do not enable this option in production environments as the dumps include
// cookies and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithAuthToken sends "Authorization: Bearer <token>" on every request.
// The storefront authenticates with cookies; this is only for deployments
// that sit behind a token-checking gateway.
func WithAuthToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("auth token must not be empty")
		}
		c.authToken = token
		return nil
	}
}

// WithAuthRequiredHandler sets the callback run whenever the API answers 401,
// typically to send the user to the sign-in screen.
func WithAuthRequiredHandler(fn func(ctx context.Context)) Option {
	return func(c *Client) error {
		c.onAuthRequired = fn
		return nil
	}
}

// WithSessionManager attaches a session manager that the auth operations
// keep up to date. Without it the client uses an in-memory manager.
func WithSessionManager(m *session.Manager) Option {
	return func(c *Client) error {
		if m == nil {
			return fmt.Errorf("session manager must not be nil")
		}
		c.sessions = m
		return nil
	}
}
