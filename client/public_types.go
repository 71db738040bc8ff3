package client

import (
	"github.com/mzansi-thrift/storefront/client/internal/api"
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	RegisterRequest       = types.RegisterRequest
	SellerRegisterRequest = types.SellerRegisterRequest
	Credentials           = types.Credentials
	ChangePasswordRequest = types.ChangePasswordRequest
	ContactMessage        = types.ContactMessage
	MediaFile             = types.MediaFile
	FormField             = api.FormField

	// Query building
	Filter         = api.Filter
	Filters        = api.Filters
	ProductFilters = api.ProductFilters

	// Identity
	Role    = types.Role
	Profile = types.Profile
)

const (
	RoleBuyer  = types.RoleBuyer
	RoleSeller = types.RoleSeller
)

// Errors re-exported in errors.go
