package api

import (
	"context"
	"net/http"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// User-facing prefixes for auth failures.
const (
	opRegistration = "Registration"
	opLogin        = "Login"
)

// Register creates a buyer account and returns the identity from {"user": ...}.
func Register(ctx context.Context, d *Dispatcher, req types.RegisterRequest) (types.Profile, error) {
	return authenticate(ctx, d, "register", "/register", opRegistration, types.BuyerEnvelopeKey, req)
}

// SellerRegister creates a seller account and returns the identity from
// {"current seller": ...}.
func SellerRegister(ctx context.Context, d *Dispatcher, req types.SellerRegisterRequest) (types.Profile, error) {
	return authenticate(ctx, d, "seller_register", "/seller/register", opRegistration, types.SellerRegisterEnvelopeKey, req)
}

// Login signs a buyer in. The session cookie lands in the client's jar.
func Login(ctx context.Context, d *Dispatcher, creds types.Credentials) (types.Profile, error) {
	return authenticate(ctx, d, "login", "/login", opLogin, types.BuyerEnvelopeKey, creds)
}

// SellerLogin signs a seller in.
func SellerLogin(ctx context.Context, d *Dispatcher, creds types.Credentials) (types.Profile, error) {
	return authenticate(ctx, d, "seller_login", "/seller/login", opLogin, types.SellerEnvelopeKey, creds)
}

func authenticate(ctx context.Context, d *Dispatcher, op, path, userOp, key string, body any) (types.Profile, error) {
	if err := types.Validate(body); err != nil {
		return types.Profile{}, sferrors.WithOp(sferrors.NewInvalidInputError(err), userOp)
	}
	raw, status, err := d.DoStatus(ctx, Request{Op: op, Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return types.Profile{}, sferrors.WithOp(err, userOp)
	}
	// Some endpoints report failures inside a 2xx body.
	if msg := types.ErrorField(raw); msg != "" {
		return types.Profile{}, sferrors.WithOp(sferrors.NewAPIError(status, msg), userOp)
	}
	p, err := types.IdentityFromEnvelope(raw, key)
	if err != nil {
		return types.Profile{}, sferrors.WithOp(sferrors.NewMalformedError(status, err.Error(), err), userOp)
	}
	return p, nil
}

// Logout ends the server session.
func Logout(ctx context.Context, d *Dispatcher) error {
	_, err := d.Do(ctx, Request{Op: "logout", Method: http.MethodPost, Path: "/logout"})
	return err
}

// GetCurrentUser asks the server who the ambient session belongs to.
func GetCurrentUser(ctx context.Context, d *Dispatcher) (types.Role, types.Profile, error) {
	raw, status, err := d.DoStatus(ctx, Request{Op: "get_user", Path: "/user"})
	if err != nil {
		return "", types.Profile{}, err
	}
	role, p, err := types.ParseCurrentUser(raw)
	if err != nil {
		return "", types.Profile{}, sferrors.NewMalformedError(status, err.Error(), err)
	}
	return role, p, nil
}
