package ports

import "context"

// SessionStore abstracts session token persistence. Tokens are keyed by
// username, so a new login replaces the previous session.
type SessionStore interface {
	Save(ctx context.Context, username, token string) error
	Delete(ctx context.Context, username string) error
}

// NoopSessionStore is a safe default when callers do not need session persistence.
var NoopSessionStore SessionStore = noopSessionStore{}

type noopSessionStore struct{}

func (noopSessionStore) Save(context.Context, string, string) error { return nil }
func (noopSessionStore) Delete(context.Context, string) error       { return nil }
