package contract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// ISessionStore persists at most one User snapshot per session ID. It is
// the only durable state in the system and carries a single JSON-encoded
// record per key, with no versioning or migration.
type ISessionStore interface {
	Save(ctx context.Context, sessionID string, user *entity.User) error
	Get(ctx context.Context, sessionID string) (*entity.User, error)
	Delete(ctx context.Context, sessionID string) error
}
