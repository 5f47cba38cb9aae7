package application

import (
	"context"
	"fmt"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// Context propagation is fire-and-forget relative to the remote call
// that produced the object: the session write happens only after the
// remote operation succeeded, but it is not transactional with it. A
// concurrent command reading the session mid-operation can observe the
// previous selection. That window is accepted; conversational commands
// arrive sequentially in practice.

// syncCard writes the card's board/list/card IDs into the session.
// Only non-empty fields overwrite.
func (s *Service) syncCard(ctx context.Context, conversation string, card domain.Card) error {
	writes := []struct {
		field domain.SessionField
		value string
	}{
		{domain.SessionFieldBoard, card.BoardID},
		{domain.SessionFieldList, card.ListID},
		{domain.SessionFieldCard, card.ID},
	}
	for _, write := range writes {
		if write.value == "" {
			continue
		}
		if err := s.sessions.Put(ctx, conversation, write.field, write.value); err != nil {
			return fmt.Errorf("write session %s: %w", write.field, err)
		}
	}
	return nil
}

// syncBoardSelected records a new current board. The previously selected
// card belonged to the old scope, so it is cleared; the list is left
// alone unless the caller supplies a fresher value separately.
func (s *Service) syncBoardSelected(ctx context.Context, conversation, boardID string) error {
	if err := s.sessions.Put(ctx, conversation, domain.SessionFieldBoard, boardID); err != nil {
		return fmt.Errorf("write session board: %w", err)
	}
	if err := s.sessions.Put(ctx, conversation, domain.SessionFieldCard, ""); err != nil {
		return fmt.Errorf("clear session card: %w", err)
	}
	return nil
}

// syncListSelected records a new current list, carrying the board ID
// along when the resolved list knows it, and clears the current card.
func (s *Service) syncListSelected(ctx context.Context, conversation, listID, boardID string) error {
	if err := s.sessions.Put(ctx, conversation, domain.SessionFieldList, listID); err != nil {
		return fmt.Errorf("write session list: %w", err)
	}
	if boardID != "" {
		if err := s.sessions.Put(ctx, conversation, domain.SessionFieldBoard, boardID); err != nil {
			return fmt.Errorf("write session board: %w", err)
		}
	}
	if err := s.sessions.Put(ctx, conversation, domain.SessionFieldCard, ""); err != nil {
		return fmt.Errorf("clear session card: %w", err)
	}
	return nil
}

// syncCardByID fetches the card and propagates its scope. Used when a
// selection resolved to a bare ID or to a checklist, where the session
// needs the owning card's board and list as well.
func (s *Service) syncCardByID(ctx context.Context, conversation string, creds domain.Credentials, cardID string) (domain.Card, error) {
	card, err := s.gateway.GetCard(ctx, creds, cardID)
	if err != nil {
		return domain.Card{}, err
	}
	if card.ID == "" {
		card.ID = cardID
	}
	if err := s.syncCard(ctx, conversation, card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}
