package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ------------------------------
// Response Envelopes
// ------------------------------

// Envelope keys for identity responses. Seller registration answers with
// "current seller" (with a space) while seller login uses "currentSeller".
const (
	BuyerEnvelopeKey          = "user"
	SellerEnvelopeKey         = "currentSeller"
	SellerRegisterEnvelopeKey = "current seller"
)

// ErrorField returns the top-level "error" string of an envelope, or "" when
// the body is not an object or carries no error.
func ErrorField(raw json.RawMessage) string {
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Error) == 0 {
		return ""
	}
	var msg string
	if err := json.Unmarshal(env.Error, &msg); err != nil {
		return ""
	}
	return msg
}

// IdentityFromEnvelope extracts the identity object stored under key.
// The value must be a JSON object; anything else is a malformed envelope.
func IdentityFromEnvelope(raw json.RawMessage, key string) (Profile, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return Profile{}, fmt.Errorf("envelope is not an object: %w", err)
	}
	obj, ok := env[key]
	if !ok {
		return Profile{}, fmt.Errorf("missing %q", key)
	}
	obj = bytes.TrimSpace(obj)
	if len(obj) == 0 || obj[0] != '{' {
		return Profile{}, fmt.Errorf("%q is not an object", key)
	}
	return ParseProfile(obj)
}

// CurrentUserResponse is the body of GET /user.
type CurrentUserResponse struct {
	User     json.RawMessage `json:"user"`
	UserType Role            `json:"user_type"`
}

// ParseCurrentUser validates the GET /user envelope and returns the role and
// identity it names.
func ParseCurrentUser(raw json.RawMessage) (Role, Profile, error) {
	var resp CurrentUserResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", Profile{}, fmt.Errorf("envelope is not an object: %w", err)
	}
	switch resp.UserType {
	case RoleBuyer, RoleSeller:
	default:
		return "", Profile{}, fmt.Errorf("unknown user_type %q", resp.UserType)
	}
	obj := bytes.TrimSpace(resp.User)
	if len(obj) == 0 || obj[0] != '{' {
		return "", Profile{}, fmt.Errorf("%q is not an object", BuyerEnvelopeKey)
	}
	p, err := ParseProfile(obj)
	if err != nil {
		return "", Profile{}, err
	}
	return resp.UserType, p, nil
}
