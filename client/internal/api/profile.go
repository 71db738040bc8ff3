package api

import (
	"context"
	"encoding/json"
	"net/http"

	sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// UpdateProfile changes the buyer's profile fields.
func UpdateProfile(ctx context.Context, d *Dispatcher, profile any) (json.RawMessage, error) {
	return send(ctx, d, "update_profile", http.MethodPut, "/user/profile", profile)
}

// UpdateAddress changes the buyer's delivery address.
func UpdateAddress(ctx context.Context, d *Dispatcher, address any) (json.RawMessage, error) {
	return send(ctx, d, "update_address", http.MethodPut, "/user/address", address)
}

// ChangePassword rotates the account password.
func ChangePassword(ctx context.Context, d *Dispatcher, req types.ChangePasswordRequest) (json.RawMessage, error) {
	if err := types.Validate(req); err != nil {
		return nil, sferrors.NewInvalidInputError(err)
	}
	return send(ctx, d, "change_password", http.MethodPut, "/user/password", req)
}
