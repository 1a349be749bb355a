package entity

import "time"

// User is the account aggregate. Passwords are stored as bcrypt hashes and
// never serialized to clients.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the client projection returned by login.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Public returns the projection safe to hand to clients.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
