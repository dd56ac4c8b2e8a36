package store

import (
	"context"
	"errors"

	"fortitwin/internal/model"
)

// ErrSessionNotFound is returned when a session id has no record
var ErrSessionNotFound = errors.New("session not found")

// SessionStore owns interview session records. Create assigns the session
// id when one isn't set.
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
}
