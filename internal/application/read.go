package application

import (
	"context"
	"fmt"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// Read resolves a reference and renders the resource without mutating
// anything remote. When sync is set, the resolved scope is propagated
// into the session the same way a select would.
func (s *Service) Read(ctx context.Context, conversation string, creds domain.Credentials, resource domain.Resource, action domain.Action, ref string, parent domain.ParentScope, sync bool) (string, error) {
	switch {
	case resource == domain.ResourceBoard && action == domain.ActionList:
		boards, err := s.gateway.ListBoards(ctx, creds)
		if err != nil {
			return "", err
		}
		return renderBoards(boards), nil

	case resource == domain.ResourceBoard && action == domain.ActionGet:
		resolution, err := s.ResolveBoard(ctx, conversation, creds, ref)
		if err != nil {
			return "", err
		}
		board, err := s.gateway.GetBoard(ctx, creds, resolution.ID)
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncBoardSelected(ctx, conversation, resolution.ID); err != nil {
				return "", err
			}
		}
		return renderBoard(board), nil

	case resource == domain.ResourceList && action == domain.ActionList:
		boardID, err := s.readBoardScope(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		lists, err := s.gateway.ListLists(ctx, creds, boardID)
		if err != nil {
			return "", err
		}
		return renderLists(boardID, lists), nil

	case resource == domain.ResourceList && action == domain.ActionGet:
		resolution, err := s.ResolveList(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		list, err := s.gateway.GetList(ctx, creds, resolution.ID)
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncListSelected(ctx, conversation, resolution.ID, list.BoardID); err != nil {
				return "", err
			}
		}
		return renderList(list), nil

	case resource == domain.ResourceCard && action == domain.ActionList:
		resolution, err := s.ResolveList(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		cards, err := s.gateway.ListCards(ctx, creds, resolution.ID, s.opts.ListCardsLimit)
		if err != nil {
			return "", err
		}
		return renderCards(resolution.ID, cards), nil

	case resource == domain.ResourceCard && action == domain.ActionGet:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		card, err := s.gateway.GetCard(ctx, creds, resolution.ID)
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncCard(ctx, conversation, card); err != nil {
				return "", err
			}
		}
		return renderCard(card), nil

	case resource == domain.ResourceCard && action == domain.ActionSearch:
		if ref == "" {
			return "", &domain.ValidationError{Msg: "search needs a keyword"}
		}
		boardID, err := s.boardScope(ctx, conversation, creds, parent)
		if err != nil {
			return "", err
		}
		cards, err := s.gateway.SearchCards(ctx, creds, boardID, ref, s.opts.SearchLimit)
		if err != nil {
			return "", err
		}
		return renderSearch(ref, cards), nil

	case resource == domain.ResourceChecklist && action == domain.ActionList:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		checklists, err := s.gateway.ListChecklists(ctx, creds, resolution.ID)
		if err != nil {
			return "", err
		}
		return renderChecklists(resolution.ID, checklists), nil

	case resource == domain.ResourceChecklist && action == domain.ActionGet:
		resolution, err := s.ResolveChecklist(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		if sync {
			if _, err := s.syncCardByID(ctx, conversation, creds, resolution.Checklist.CardID); err != nil {
				return "", err
			}
		}
		return renderChecklist(*resolution.Checklist), nil
	}

	return "", &domain.ValidationError{Msg: fmt.Sprintf("cannot %s a %s", action, resource)}
}

// readBoardScope picks the board a listing runs against: explicit ref
// first, then parent scope, then session.
func (s *Service) readBoardScope(ctx context.Context, conversation string, creds domain.Credentials, ref string, parent domain.ParentScope) (string, error) {
	if ref != "" {
		resolution, err := s.ResolveBoard(ctx, conversation, creds, ref)
		if err != nil {
			return "", err
		}
		return resolution.ID, nil
	}
	return s.boardScope(ctx, conversation, creds, parent)
}
