package domain

import "time"

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserRepository interface {
	FindByID(id int64) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindByUsernameOrEmail(identifier string) (*User, error)
	Create(user *User) error
	UpdateLastLogin(id int64, at time.Time) error
}

type AuthService interface {
	Register(username, email, fullName, password string) (*User, error)
	Authenticate(identifier, password string) (*User, error)
	IssueTokens(user *User) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	ResolveUser(token string) (*User, error)
}
