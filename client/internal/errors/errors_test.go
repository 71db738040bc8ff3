package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWithOp(t *testing.T) {
	t.Parallel()
	base := NewAPIError(409, "Email already registered")
	err := WithOp(base, "Registration")
	if err.Error() != "Registration failed: Email already registered" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if KindOf(err) != KindAPI {
		t.Fatalf("kind lost: %s", KindOf(err))
	}
	if base.Op != "" {
		t.Fatal("WithOp must not mutate its input")
	}

	foreign := WithOp(fmt.Errorf("plain"), "Login")
	if foreign.Error() != "Login failed: plain" || KindOf(foreign) != KindUnknown {
		t.Fatalf("unexpected foreign wrap: %v (%s)", foreign, KindOf(foreign))
	}
	if WithOp(nil, "Login") != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestIsAndKind(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("wrapped: %w", NewTimeoutError(context.DeadlineExceeded))
	if !IsKind(err, KindTimeout) {
		t.Fatal("expected timeout kind through wrapping")
	}
	if !stderrors.Is(err, &Error{Kind: KindTimeout}) {
		t.Fatal("errors.Is should match on kind")
	}
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Fatal("cause should stay reachable")
	}
	if IsKind(nil, KindTimeout) {
		t.Fatal("nil has no kind")
	}
}

func TestNewHTTPError(t *testing.T) {
	t.Parallel()
	if e := NewHTTPError(401); e.Kind != KindAuthenticationRequired || e.Error() != "Authentication required" {
		t.Fatalf("unexpected 401: %+v", e)
	}
	if e := NewHTTPError(403); e.Kind != KindAccessForbidden {
		t.Fatalf("unexpected 403: %+v", e)
	}
	if e := NewHTTPError(418); e.Kind != KindAPI || e.Message != "Request failed with status 418" {
		t.Fatalf("unexpected 418: %+v", e)
	}
}

func TestIsRecoverable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err  error
		want bool
	}{
		{NewTimeoutError(nil), true},
		{NewNetworkError(fmt.Errorf("refused")), true},
		{NewAPIError(500, ""), true},
		{NewAPIError(429, ""), true},
		{NewAPIError(408, ""), true},
		{NewAPIError(400, "bad"), false},
		{NewHTTPError(401), false},
		{NewFormatError(502, "<html>"), false},
		{fmt.Errorf("foreign"), false},
	}
	for i, c := range cases {
		if got := IsRecoverable(c.err); got != c.want {
			t.Fatalf("case %d (%v): got %v want %v", i, c.err, got, c.want)
		}
	}
}
