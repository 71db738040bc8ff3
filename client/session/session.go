// Package session tracks who is signed in to the storefront on this device.
//
// A Session is exactly one of Anonymous, Buyer or Seller. The server decides
// authorization through its own cookie; the session here only drives what
// the caller displays and is mirrored into a Store so it survives restarts.
package session

import (
	"github.com/mzansi-thrift/storefront/client/internal/types"
)

// Profile is the identity object of a signed-in buyer or seller.
type Profile = types.Profile

// Role says which kind of identity a Session holds.
type Role int

const (
	RoleAnonymous Role = iota
	RoleBuyer
	RoleSeller
)

func (r Role) String() string {
	switch r {
	case RoleBuyer:
		return "buyer"
	case RoleSeller:
		return "seller"
	default:
		return "anonymous"
	}
}

// Session is an immutable value; the zero value is anonymous.
type Session struct {
	role    Role
	profile Profile
}

// Anonymous returns the signed-out session.
func Anonymous() Session { return Session{} }

// Buyer returns a session for a signed-in buyer.
func Buyer(p Profile) Session { return Session{role: RoleBuyer, profile: p} }

// Seller returns a session for a signed-in seller.
func Seller(p Profile) Session { return Session{role: RoleSeller, profile: p} }

// Role returns the session's role.
func (s Session) Role() Role { return s.role }

// Profile returns the identity, or false for anonymous sessions.
func (s Session) Profile() (Profile, bool) {
	if s.role == RoleAnonymous {
		return Profile{}, false
	}
	return s.profile, true
}

// IsAnonymous reports whether nobody is signed in.
func (s Session) IsAnonymous() bool { return s.role == RoleAnonymous }

// DisplayName is the label shown for the session: the buyer's full name,
// the seller's business name, or "Account" when signed out.
func (s Session) DisplayName() string {
	if s.role == RoleAnonymous {
		return "Account"
	}
	return s.profile.DisplayName()
}

// FromUserType builds a Session from the user_type reported by GET /user.
func FromUserType(role types.Role, p Profile) Session {
	if role == types.RoleSeller {
		return Seller(p)
	}
	return Buyer(p)
}
