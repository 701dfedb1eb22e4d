// Package auth carries the signed-in user context. The value is created once
// at startup and handed to the components that need it; nothing mutates it.
package auth

import "strings"

// Session describes the user the program acts for.
type Session struct {
	User  string
	Token string
}

// Anonymous is the session used when no user was configured.
var Anonymous = Session{}

// DisplayName returns the user name for headers, or "" when anonymous.
func (s Session) DisplayName() string {
	return strings.TrimSpace(s.User)
}

// Authorization returns the Authorization header value, or "" if no token.
func (s Session) Authorization() string {
	token := strings.TrimSpace(s.Token)
	if token == "" {
		return ""
	}
	return "Bearer " + token
}
