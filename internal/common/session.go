package common

import "context"

type Role string

const (
	RoleMentor  Role = "mentor"
	RoleStartup Role = "startup"
)

// Session is the caller identity handed to every core operation. It is built
// once at the HTTP boundary from the bearer token and passed explicitly;
// business packages never read it from globals.
type Session struct {
	AccountID uint64
	Role      Role

	// Exactly one of these is set, matching Role.
	MentorID  uint64
	StartupID uint64
}

func (s *Session) IsMentor() bool  { return s.Role == RoleMentor }
func (s *Session) IsStartup() bool { return s.Role == RoleStartup }

type ctxKey int

const sessionKey ctxKey = iota

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFrom returns the session injected by the auth middleware.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}
