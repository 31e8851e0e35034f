package domain

// Role is the closed set of actor roles known to the API.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

// Principal is the authenticated identity attached to a request by the auth
// middleware. It is constructed once per request after the bearer token and
// the backing account record have both been verified, and is never mutated.
// Only ID and Role come from the token; the rest is resolved from storage.
type Principal struct {
	ID       string
	Role     Role
	Username string
	Name     string
}
