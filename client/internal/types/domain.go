package types

import (
	"encoding/json"
	"io"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role distinguishes buyer and seller identities.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Profile is the identity object returned by the auth endpoints. Only the
// fields the client displays are decoded; Raw keeps the exact JSON so it can
// be persisted and handed back unchanged.
type Profile struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// DisplayName is the name shown for the identity: business name for sellers,
// full name for buyers.
func (p Profile) DisplayName() string {
	if p.BusinessName != "" {
		return p.BusinessName
	}
	return p.FullName
}

// ParseProfile decodes a stored or received identity object, keeping raw.
func ParseProfile(raw json.RawMessage) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, err
	}
	p.Raw = append(json.RawMessage(nil), raw...)
	return p, nil
}

// MediaFile is one file attached to a multipart upload.
type MediaFile struct {
	Name    string
	Content io.Reader
}
