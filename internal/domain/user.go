package domain

import "strings"

// Sender is the Telegram user behind an update
type Sender struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// HasHandle reports whether the user has a public @username
func (s Sender) HasHandle() bool {
	return strings.TrimSpace(s.Username) != ""
}

// DisplayName returns first and last name joined by a space
func (s Sender) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}
