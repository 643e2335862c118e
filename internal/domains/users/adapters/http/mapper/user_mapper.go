// Package mapper converts between the auth wire payloads and the account
// aggregate. Passwords never travel back out.
package mapper

import userdomain "github.com/pickbotics/storefront/internal/domains/users/domain"

// Credentials is the register and login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// User is the wire form of an account, without the password.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session is the login response payload.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// FromDomain converts an account into its wire representation.
func FromDomain(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}

// SessionFor builds the login response for an account and its token.
func SessionFor(user *userdomain.User, token string) Session {
	return Session{Token: token, User: FromDomain(user)}
}
