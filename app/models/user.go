package models

// Roles recognised by the storefront.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a storefront account. Accounts are keyed by lowercased email.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // stored per AUTH_HASH_PASSWORDS, see pkg/auth
	Role     string `json:"role"`
	JoinedAt string `json:"joinedAt,omitempty"`
}

// Session is the signed-in account as exposed to clients. Never carries
// the password.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public strips the credential from a user record.
func (u User) Public() Session {
	return Session{Name: u.Name, Email: u.Email, Role: u.Role}
}
