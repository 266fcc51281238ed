// Package auth holds the shared authorization predicate used by every
// service-layer permission check. Role names form a closed set; ADMIN is
// additive on top of the default USER role.
package auth

// Role names as stored in the roles table and carried in token claims.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// IsAdmin checks if the role set contains the admin role
func IsAdmin(roles []string) bool {
	return HasRole(roles, RoleAdmin)
}

// HasRole checks if the role set contains a specific role
func HasRole(roles []string, targetRole string) bool {
	for _, role := range roles {
		if role == targetRole {
			return true
		}
	}
	return false
}

// IsValidRole reports whether name is one of the known role names.
func IsValidRole(name string) bool {
	return name == RoleUser || name == RoleAdmin
}
