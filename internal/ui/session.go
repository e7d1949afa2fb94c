package ui

import "github.com/google/uuid"

// Session holds the currently authenticated user. It is an explicit object
// owned by the shell, passed to whatever mediates UI actions; there is no
// module-level session state.
type Session struct {
	ID       uuid.UUID
	UserID   uint
	Username string
}

// Start binds the session to an authenticated user and assigns it a fresh
// identifier.
func (s *Session) Start(userID uint, username string) {
	s.ID = uuid.New()
	s.UserID = userID
	s.Username = username
}

// Clear logs the user out.
func (s *Session) Clear() {
	*s = Session{}
}

// LoggedIn reports whether a user is authenticated.
func (s *Session) LoggedIn() bool {
	return s.UserID != 0
}
