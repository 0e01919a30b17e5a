package models

import "strings"

// CanonicalRole is the single normalized role value used everywhere past the
// auth boundary. Raw claims from the session provider are never compared
// directly; they go through ResolveRole exactly once.
type CanonicalRole string

const (
	RoleCustomer     CanonicalRole = "customer"
	RoleProfessional CanonicalRole = "professional"
	RoleAdmin        CanonicalRole = "admin"
)

// roleSynonyms maps every raw claim the platform has historically issued
// (Spanish and English variants) to its canonical role.
var roleSynonyms = map[string]CanonicalRole{
	"profesional":  RoleProfessional,
	"professional": RoleProfessional,
	"cliente":      RoleCustomer,
	"customer":     RoleCustomer,
	"admin":        RoleAdmin,
}

// ResolveRole normalizes a raw role claim. A missing or unrecognized claim
// falls back to customer, matching the historical behavior of the platform.
func ResolveRole(raw string) CanonicalRole {
	if role, ok := roleSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return role
	}
	return RoleCustomer
}

// ClaimsFor returns every raw claim value that normalizes to role, for
// queries that must match what the users table actually stores.
func ClaimsFor(role CanonicalRole) []string {
	var claims []string
	for raw, canonical := range roleSynonyms {
		if canonical == role {
			claims = append(claims, raw)
		}
	}
	return claims
}

// KnownRoleClaim reports whether raw is an accepted claim value. Signup
// rejects anything outside the synonym table.
func KnownRoleClaim(raw string) bool {
	_, ok := roleSynonyms[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// Capabilities are the access flags derived from a canonical role.
type Capabilities struct {
	IsAdmin        bool `json:"is_admin"`
	IsProfessional bool `json:"is_professional"`
	IsCustomer     bool `json:"is_customer"`
}

func (r CanonicalRole) Capabilities() Capabilities {
	return Capabilities{
		IsAdmin:        r == RoleAdmin,
		IsProfessional: r == RoleProfessional,
		IsCustomer:     r == RoleCustomer,
	}
}

// ResolutionState distinguishes "not yet determined" from "determined". Gates
// must not collapse Unknown into a denial.
type ResolutionState int

const (
	ResolutionUnknown ResolutionState = iota
	ResolutionResolved
)

// Resolution is the output of the identity resolver: who the caller is and
// what they may do. The stored users row takes precedence over the token
// claim when both carry a role.
type Resolution struct {
	State        ResolutionState `json:"-"`
	UserID       uint            `json:"user_id"`
	Role         CanonicalRole   `json:"role"`
	Capabilities Capabilities    `json:"capabilities"`
}

func (r Resolution) Resolved() bool {
	return r.State == ResolutionResolved
}

// ResolveIdentity builds a Resolution from the token claim and the stored
// user row, if any. stored == nil means the row was looked up and not found,
// in which case the claim alone decides.
func ResolveIdentity(userID uint, claimRole string, stored *User) Resolution {
	raw := claimRole
	if stored != nil && stored.Role != "" {
		raw = stored.Role
	}
	role := ResolveRole(raw)
	return Resolution{
		State:        ResolutionResolved,
		UserID:       userID,
		Role:         role,
		Capabilities: role.Capabilities(),
	}
}

// UnknownResolution is the resolver output while the stored profile cannot be
// consulted (store unreachable). Callers should hold, not deny.
func UnknownResolution(userID uint) Resolution {
	return Resolution{State: ResolutionUnknown, UserID: userID}
}
