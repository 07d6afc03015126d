package models

import "time"

// Session grants time-bounded access to a user after a successful login.
// The token is an opaque random string handed to the client.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Key() string { return s.Token }
