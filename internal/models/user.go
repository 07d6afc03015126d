package models

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID           string `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"`
}

func (u User) Key() string { return u.ID }
