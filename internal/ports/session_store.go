package ports

import (
	"context"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// SessionStore persists per-conversation selection state. A missing key
// reads as the empty string, not an error. Single-key reads and writes
// are consistent; nothing spans keys.
type SessionStore interface {
	Get(ctx context.Context, conversation string, field domain.SessionField) (string, error)
	Put(ctx context.Context, conversation string, field domain.SessionField, value string) error
}
