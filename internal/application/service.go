package application

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/potatoworkshop/trellobot/internal/domain"
	"github.com/potatoworkshop/trellobot/internal/ports"
)

// ResolverOptions tune reference resolution. The zero value gives the
// conservative defaults observed in the original bot.
type ResolverOptions struct {
	// BoardSearchFallback retries a list-scoped name lookup as a
	// board-wide keyword search when the list yields no match. Off by
	// default: a name that is not on the scoped list stays "not found".
	// A list-scoped gateway failure falls through to board search
	// regardless, when a board scope exists.
	BoardSearchFallback bool

	// ListCardsLimit bounds card listings used for name matching and
	// the cards view. Clamped remotely to [1,100].
	ListCardsLimit int

	// SearchLimit bounds board-wide keyword searches. Clamped remotely
	// to [1,50].
	SearchLimit int
}

const (
	defaultListCardsLimit = 30
	defaultSearchLimit    = 10
)

func (o ResolverOptions) withDefaults() ResolverOptions {
	if o.ListCardsLimit <= 0 {
		o.ListCardsLimit = defaultListCardsLimit
	}
	if o.SearchLimit <= 0 {
		o.SearchLimit = defaultSearchLimit
	}
	return o
}

// Service is the conversational core: reference resolution, context
// propagation and the generic select/read/write operations the command
// and tool surfaces dispatch into.
type Service struct {
	gateway  ports.Gateway
	sessions ports.SessionStore
	opts     ResolverOptions
	log      *log.Logger
}

func NewService(gateway ports.Gateway, sessions ports.SessionStore, opts ResolverOptions, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Service{
		gateway:  gateway,
		sessions: sessions,
		opts:     opts.withDefaults(),
		log:      logger,
	}
}

// SessionContext snapshots the conversation's current selection. Each
// field is an independent read; a concurrent command may change a later
// field between reads.
func (s *Service) SessionContext(ctx context.Context, conversation string) (domain.SessionContext, error) {
	var snapshot domain.SessionContext
	reads := []struct {
		field domain.SessionField
		dst   *string
	}{
		{domain.SessionFieldBoard, &snapshot.BoardID},
		{domain.SessionFieldList, &snapshot.ListID},
		{domain.SessionFieldCard, &snapshot.CardID},
		{domain.SessionFieldDoneList, &snapshot.DoneListID},
	}
	for _, read := range reads {
		value, err := s.sessions.Get(ctx, conversation, read.field)
		if err != nil {
			return domain.SessionContext{}, fmt.Errorf("read session %s: %w", read.field, err)
		}
		*read.dst = value
	}
	return snapshot, nil
}

func (s *Service) sessionValue(ctx context.Context, conversation string, field domain.SessionField) (string, error) {
	value, err := s.sessions.Get(ctx, conversation, field)
	if err != nil {
		return "", fmt.Errorf("read session %s: %w", field, err)
	}
	return value, nil
}
