package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// DefaultTimeout bounds every request, including reading the response body.
const DefaultTimeout = 50 * time.Second

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dispatcher sends one logical operation to the storefront API and turns the
// response into raw JSON or an *errors.Error. It holds no per-call state and
// is safe for concurrent use.
type Dispatcher struct {
	BaseURL string
	HTTP    HTTPClient
	Timeout time.Duration

	// OnAuthRequired runs once for every 401 before the error is returned.
	OnAuthRequired func(ctx context.Context)
	// Observe, when set, is called after every request with its outcome.
	Observe func(op string, err error, elapsed time.Duration)
}

// Request describes one call. Only Path is mandatory.
type Request struct {
	Op        string // short operation name used in logs and metrics
	Method    string // defaults to GET
	Path      string // relative to the base URL, e.g. "/products/7"
	Query     string // already encoded, without the leading '?'
	Body      any    // JSON-encoded when non-nil
	Header    http.Header
	Multipart *Multipart // replaces Body with a multipart/form-data payload
}

// Do executes r. A nil error means the status was 2xx and the body was JSON.
func (d *Dispatcher) Do(ctx context.Context, r Request) (json.RawMessage, error) {
	raw, _, err := d.DoStatus(ctx, r)
	return raw, err
}

// DoStatus is Do that also reports the response status, or 0 when no
// response arrived.
func (d *Dispatcher) DoStatus(ctx context.Context, r Request) (raw json.RawMessage, status int, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			logFailure(r, err)
		}
		if d.Observe != nil {
			d.Observe(r.Op, err, time.Since(start))
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, 0, classifyTransport(ctx, err)
	}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, contentType, streamDone, err := r.encode(reqCtx)
	if err != nil {
		return nil, 0, sferrors.NewInvalidInputError(err)
	}
	if c, ok := body.(io.Closer); ok {
		// unblocks the multipart writer if the server answers early
		defer func() { _ = c.Close() }()
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, r.method(), d.url(r), body)
	if err != nil {
		return nil, 0, sferrors.NewInvalidInputError(err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	for k, vs := range r.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := d.HTTP.Do(httpReq)
	if err != nil {
		if werr := streamFailure(streamDone); werr != nil && reqCtx.Err() == nil {
			return nil, 0, sferrors.NewInvalidInputError(werr)
		}
		return nil, 0, classifyTransport(reqCtx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err = d.handle(ctx, reqCtx, resp)
	return raw, resp.StatusCode, err
}

// streamFailure returns the multipart writer's error if it already failed.
func streamFailure(done <-chan error) error {
	if done == nil {
		return nil
	}
	select {
	case err := <-done:
		return err
	default:
		return nil
	}
}

func (d *Dispatcher) handle(ctx, reqCtx context.Context, resp *http.Response) (json.RawMessage, error) {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if d.OnAuthRequired != nil {
			d.OnAuthRequired(ctx)
		}
		return nil, sferrors.NewHTTPError(resp.StatusCode)
	case http.StatusForbidden:
		return nil, sferrors.NewHTTPError(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(reqCtx, err)
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		return nil, sferrors.NewFormatError(resp.StatusCode, string(data))
	}
	if !json.Valid(data) {
		return nil, sferrors.NewMalformedError(resp.StatusCode, "invalid JSON body", nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, sferrors.NewAPIError(resp.StatusCode, types.ErrorField(data))
	}
	return json.RawMessage(data), nil
}

func (d *Dispatcher) url(r Request) string {
	u := strings.TrimRight(d.BaseURL, "/") + r.Path
	if r.Query != "" {
		u += "?" + r.Query
	}
	return u
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}

// encode returns the request body and the content type it needs.
// JSON requests always advertise application/json, even without a body.
// Multipart bodies are streamed under ctx; the channel reports the writer's
// result and is nil for JSON bodies.
func (r Request) encode(ctx context.Context) (io.Reader, string, <-chan error, error) {
	if r.Multipart != nil {
		if err := r.Multipart.validate(); err != nil {
			return nil, "", nil, err
		}
		body, contentType, done := r.Multipart.stream(ctx)
		return body, contentType, done, nil
	}
	if r.Body == nil {
		return nil, "application/json", nil, nil
	}
	b, err := json.Marshal(r.Body)
	if err != nil {
		return nil, "", nil, err
	}
	return bytes.NewReader(b), "application/json", nil, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}

// classifyTransport separates the per-request deadline from other transport
// failures. ctx is the context the request ran under.
func classifyTransport(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return sferrors.NewTimeoutError(err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return sferrors.NewTimeoutError(err)
	}
	return sferrors.NewNetworkError(err)
}

func logFailure(r Request, err error) {
	var e *sferrors.Error
	ev := log.Error().Err(err).Str("op", r.Op).Str("method", r.method()).Str("path", r.Path)
	if errors.As(err, &e) {
		ev = ev.Str("kind", e.Kind.String()).Int("status_code", e.StatusCode)
	}
	ev.Msg("API request failed")
}

// get is shared by the read-only wrappers.
func get(ctx context.Context, d *Dispatcher, op, path, query string) (json.RawMessage, error) {
	return d.Do(ctx, Request{Op: op, Path: path, Query: query})
}

// send is shared by the wrappers that carry a JSON body (body may be nil).
func send(ctx context.Context, d *Dispatcher, op, method, path string, body any) (json.RawMessage, error) {
	return d.Do(ctx, Request{Op: op, Method: method, Path: path, Body: body})
}
