// Package role defines the closed set of user roles and the access policy
// applied before role-gated operations.
package role

// Role is a user's authorization level. Only the two declared values are
// valid; anything else fails authorization.
type Role string

const (
	// User is the default role assigned at registration.
	User Role = "user"
	// Admin may additionally mutate the catalog and manage users.
	Admin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == User || r == Admin
}

// Authorize reports whether an actor holding the given role may perform an
// operation that requires the given role. The policy is a pure predicate,
// re-evaluated per request, and fails closed: an empty or unknown actor
// role never authorizes anything.
func Authorize(actor, required Role) bool {
	switch required {
	case Admin:
		return actor == Admin
	case User:
		// Any authenticated role satisfies a user-level requirement.
		return actor == User || actor == Admin
	default:
		return false
	}
}
