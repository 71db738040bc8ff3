package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// newServer starts a stub API and returns a dispatcher pointed at its /api prefix.
func newServer(t *testing.T, h http.HandlerFunc) *Dispatcher {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &Dispatcher{BaseURL: srv.URL + "/api", HTTP: srv.Client()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func wantKind(t *testing.T, err error, k sferrors.Kind) *sferrors.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", k)
	}
	var e *sferrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %T: %v", err, err)
	}
	if e.Kind != k {
		t.Fatalf("expected kind %s, got %s (%v)", k, e.Kind, err)
	}
	return e
}
