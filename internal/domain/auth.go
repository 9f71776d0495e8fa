package domain

// Identity labels the kind of account behind a token.
type Identity string

const (
	IdentityStaff Identity = "staff"
	IdentityDonor Identity = "donor"
)

// Role is the authorization label carried in token claims.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleDonor Role = "donor"
)

// Account pairs the identity and role granted to a recognized login.
type Account struct {
	Identity Identity
	Role     Role
}
