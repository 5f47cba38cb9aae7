package application

import (
	"context"
	"fmt"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// Select resolves a reference and always propagates it into the session
// context. It is the backing for the use-board/use-list family and the
// trello_select tool.
func (s *Service) Select(ctx context.Context, conversation string, creds domain.Credentials, resource domain.Resource, ref string, parent domain.ParentScope) (string, error) {
	switch resource {
	case domain.ResourceBoard:
		resolution, err := s.ResolveBoard(ctx, conversation, creds, ref)
		if err != nil {
			return "", err
		}
		if err := s.syncBoardSelected(ctx, conversation, resolution.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Default board set for this session: %s", describeResolution(resolution.ID, resolution.Board)), nil

	case domain.ResourceList:
		resolution, err := s.ResolveList(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		boardID := ""
		if resolution.List != nil {
			boardID = resolution.List.BoardID
		}
		if err := s.syncListSelected(ctx, conversation, resolution.ID, boardID); err != nil {
			return "", err
		}
		var name *string
		if resolution.List != nil {
			name = &resolution.List.Name
		}
		return fmt.Sprintf("Default list set for this session: %s", describeNamed(resolution.ID, name)), nil

	case domain.ResourceCard:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		card, err := s.selectedCard(ctx, conversation, creds, resolution)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Current card set for this session: %s (%s)", card.Name, card.ID), nil

	case domain.ResourceChecklist:
		resolution, err := s.ResolveChecklist(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		// Selecting a checklist selects its owning card.
		if _, err := s.syncCardByID(ctx, conversation, creds, resolution.Checklist.CardID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Current checklist: %s (%s), card context updated", resolution.Checklist.Name, resolution.ID), nil
	}

	return "", &domain.ValidationError{Msg: fmt.Sprintf("a %s cannot be selected", resource)}
}

// SelectDoneList records the list that the done action moves cards to.
// It does not touch the current list or card selection.
func (s *Service) SelectDoneList(ctx context.Context, conversation string, creds domain.Credentials, ref string, parent domain.ParentScope) (string, error) {
	if ref == "" {
		return "", &domain.MissingContextError{Resource: domain.ResourceList, Hint: "use-done <list>"}
	}

	resolution, err := s.ResolveList(ctx, conversation, creds, ref, parent)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Put(ctx, conversation, domain.SessionFieldDoneList, resolution.ID); err != nil {
		return "", fmt.Errorf("write session done list: %w", err)
	}

	var name *string
	if resolution.List != nil {
		name = &resolution.List.Name
	}
	return fmt.Sprintf("Done list set for this session: %s", describeNamed(resolution.ID, name)), nil
}

// selectedCard fetches the card when resolution only produced an ID,
// then propagates its scope into the session.
func (s *Service) selectedCard(ctx context.Context, conversation string, creds domain.Credentials, resolution Resolution) (domain.Card, error) {
	if resolution.Card != nil {
		if err := s.syncCard(ctx, conversation, *resolution.Card); err != nil {
			return domain.Card{}, err
		}
		return *resolution.Card, nil
	}
	return s.syncCardByID(ctx, conversation, creds, resolution.ID)
}

func describeResolution(id string, board *domain.Board) string {
	if board != nil {
		return fmt.Sprintf("%s (%s)", board.Name, id)
	}
	return id
}

func describeNamed(id string, name *string) string {
	if name != nil && *name != "" {
		return fmt.Sprintf("%s (%s)", *name, id)
	}
	return id
}
