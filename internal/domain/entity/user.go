// Package entity contains the core business objects of the project.
package entity

// User is the core identity entity, representing a unique account.
// The password hash never leaves the repository layer; the session record
// persisted for a logged-in user is exactly this struct serialized as JSON.
type User struct {
	ID    string `json:"id"`    // Unique identifier for the account.
	Name  string `json:"name"`  // Display name.
	Email string `json:"email"` // Login identifier; unique across accounts.
	Role  Role   `json:"role"`  // Role used to gate administrative operations.
}

// IsAdmin reports whether the user may perform catalog mutations.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
