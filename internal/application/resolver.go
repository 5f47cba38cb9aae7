package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// Resolution is the outcome of turning an id-or-name reference into a
// concrete resource. ID is always set on success. The object pointer for
// the resolved resource is set only when the lookup went through a
// listing; an ID-shaped reference is trusted without a fetch, so its
// object stays nil and existence is discovered by the next operation.
type Resolution struct {
	Resource  domain.Resource
	ID        string
	Board     *domain.Board
	List      *domain.List
	Card      *domain.Card
	Checklist *domain.Checklist
	CheckItem *domain.CheckItem
}

// Resolve dispatches to the per-resource resolver.
func (s *Service) Resolve(ctx context.Context, conversation string, creds domain.Credentials, resource domain.Resource, ref string, parent domain.ParentScope) (Resolution, error) {
	switch resource {
	case domain.ResourceBoard:
		return s.ResolveBoard(ctx, conversation, creds, ref)
	case domain.ResourceList:
		return s.ResolveList(ctx, conversation, creds, ref, parent)
	case domain.ResourceCard:
		return s.ResolveCard(ctx, conversation, creds, ref, parent)
	case domain.ResourceChecklist:
		return s.ResolveChecklist(ctx, conversation, creds, ref, parent)
	case domain.ResourceCheckItem:
		return s.ResolveCheckItem(ctx, conversation, creds, ref, parent)
	}
	return Resolution{}, fmt.Errorf("unknown resource %q", resource)
}

// ResolveBoard resolves against all boards visible to the credentials.
func (s *Service) ResolveBoard(ctx context.Context, conversation string, creds domain.Credentials, ref string) (Resolution, error) {
	if ref == "" {
		sessionBoard, err := s.sessionValue(ctx, conversation, domain.SessionFieldBoard)
		if err != nil {
			return Resolution{}, err
		}
		if sessionBoard == "" {
			return Resolution{}, &domain.MissingContextError{Resource: domain.ResourceBoard}
		}
		ref = sessionBoard
	}
	if domain.IsID(ref) {
		return Resolution{Resource: domain.ResourceBoard, ID: ref}, nil
	}

	boards, err := s.gateway.ListBoards(ctx, creds)
	if err != nil {
		return Resolution{}, err
	}
	matched, err := MatchNamed(domain.ResourceBoard, boardItems(boards), ref)
	if err != nil {
		return Resolution{}, err
	}
	board := boardByID(boards, matched.ID)
	return Resolution{Resource: domain.ResourceBoard, ID: board.ID, Board: board}, nil
}

// ResolveList resolves within a board scope: the explicit parent when
// given, otherwise the session board.
func (s *Service) ResolveList(ctx context.Context, conversation string, creds domain.Credentials, ref string, parent domain.ParentScope) (Resolution, error) {
	if ref == "" {
		sessionList, err := s.sessionValue(ctx, conversation, domain.SessionFieldList)
		if err != nil {
			return Resolution{}, err
		}
		if sessionList == "" {
			return Resolution{}, &domain.MissingContextError{Resource: domain.ResourceList}
		}
		ref = sessionList
	}
	if domain.IsID(ref) {
		return Resolution{Resource: domain.ResourceList, ID: ref}, nil
	}

	boardID, err := s.boardScope(ctx, conversation, creds, parent)
	if err != nil {
		return Resolution{}, err
	}

	lists, err := s.gateway.ListLists(ctx, creds, boardID)
	if err != nil {
		return Resolution{}, err
	}
	matched, err := MatchNamed(domain.ResourceList, listItems(lists), ref)
	if err != nil {
		return Resolution{}, err
	}
	list := listByID(lists, matched.ID)
	return Resolution{Resource: domain.ResourceList, ID: list.ID, List: list}, nil
}

// ResolveCard resolves a card by name within a list scope when one is
// available, falling back to a board-wide keyword search per the rules
// in ResolverOptions. An explicit parent scopes the lookup instead of
// the session defaults.
func (s *Service) ResolveCard(ctx context.Context, conversation string, creds domain.Credentials, ref string, parent domain.ParentScope) (Resolution, error) {
	if ref == "" {
		sessionCard, err := s.sessionValue(ctx, conversation, domain.SessionFieldCard)
		if err != nil {
			return Resolution{}, err
		}
		if sessionCard == "" {
			return Resolution{}, &domain.MissingContextError{Resource: domain.ResourceCard}
		}
		ref = sessionCard
	}
	if domain.IsID(ref) {
		return Resolution{Resource: domain.ResourceCard, ID: ref}, nil
	}

	listID, boardID, err := s.cardScopes(ctx, conversation, creds, parent)
	if err != nil {
		return Resolution{}, err
	}

	if listID != "" {
		card, listErr := s.matchCardInList(ctx, creds, listID, ref)
		switch {
		case listErr == nil:
			return Resolution{Resource: domain.ResourceCard, ID: card.ID, Card: card}, nil
		case domain.IsRemote(listErr) && boardID != "":
			// The scoped listing failed outright; the board-wide
			// search may still answer.
		case s.opts.BoardSearchFallback && boardID != "" && isNotFound(listErr):
		default:
			return Resolution{}, listErr
		}
	} else if boardID == "" {
		return Resolution{}, &domain.MissingContextError{Resource: domain.ResourceBoard}
	}

	card, err := s.matchCardOnBoard(ctx, creds, boardID, ref)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Resource: domain.ResourceCard, ID: card.ID, Card: card}, nil
}

// ResolveChecklist resolves within the owning card's checklist listing.
// ID-shaped references are matched by ID equality inside the same
// listing so the object comes back too.
func (s *Service) ResolveChecklist(ctx context.Context, conversation string, creds domain.Credentials, ref string, parent domain.ParentScope) (Resolution, error) {
	if ref == "" {
		return Resolution{}, &domain.MissingContextError{Resource: domain.ResourceChecklist, Hint: "checklists"}
	}

	cardID, err := s.cardScopeForChecklist(ctx, conversation, creds, parent)
	if err != nil {
		return Resolution{}, err
	}

	checklists, err := s.gateway.ListChecklists(ctx, creds, cardID)
	if err != nil {
		return Resolution{}, err
	}

	if domain.IsID(ref) {
		for i := range checklists {
			if checklists[i].ID == ref {
				return Resolution{Resource: domain.ResourceChecklist, ID: ref, Checklist: &checklists[i]}, nil
			}
		}
		return Resolution{}, &domain.NotFoundError{Resource: domain.ResourceChecklist, Query: ref}
	}

	matched, err := MatchNamed(domain.ResourceChecklist, checklistItems(checklists), ref)
	if err != nil {
		return Resolution{}, err
	}
	for i := range checklists {
		if checklists[i].ID == matched.ID {
			return Resolution{Resource: domain.ResourceChecklist, ID: matched.ID, Checklist: &checklists[i]}, nil
		}
	}
	return Resolution{}, &domain.NotFoundError{Resource: domain.ResourceChecklist, Query: ref}
}

// ResolveCheckItem resolves within an owning checklist, which must come
// from the parent scope (there is no session default for checklists).
func (s *Service) ResolveCheckItem(ctx context.Context, conversation string, creds domain.Credentials, ref string, parent domain.ParentScope) (Resolution, error) {
	if parent.IsZero() || parent.Kind != domain.ResourceChecklist {
		return Resolution{}, &domain.ValidationError{Msg: "a check item reference needs its checklist (pass parent_resource=checklist)"}
	}

	checklistResolution, err := s.ResolveChecklist(ctx, conversation, creds, parent.Ref, domain.ParentScope{})
	if err != nil {
		return Resolution{}, err
	}
	checklist := checklistResolution.Checklist

	if domain.IsID(ref) {
		for i := range checklist.Items {
			if checklist.Items[i].ID == ref {
				return checkItemResolution(checklist, &checklist.Items[i]), nil
			}
		}
		return Resolution{}, &domain.NotFoundError{Resource: domain.ResourceCheckItem, Query: ref}
	}

	matched, err := MatchNamed(domain.ResourceCheckItem, checkItemItems(checklist.Items), ref)
	if err != nil {
		return Resolution{}, err
	}
	for i := range checklist.Items {
		if checklist.Items[i].ID == matched.ID {
			return checkItemResolution(checklist, &checklist.Items[i]), nil
		}
	}
	return Resolution{}, &domain.NotFoundError{Resource: domain.ResourceCheckItem, Query: ref}
}

// ResolveParent turns a generic parent scope into the bag of concrete
// IDs it contributes, for call sites that accept a single parent
// argument instead of resource-specific parameters.
func (s *Service) ResolveParent(ctx context.Context, conversation string, creds domain.Credentials, parent domain.ParentScope) (domain.ScopeIDs, error) {
	if parent.IsZero() {
		return domain.ScopeIDs{}, nil
	}

	resolution, err := s.Resolve(ctx, conversation, creds, parent.Kind, parent.Ref, domain.ParentScope{})
	if err != nil {
		return domain.ScopeIDs{}, err
	}

	var scope domain.ScopeIDs
	switch parent.Kind {
	case domain.ResourceBoard:
		scope.BoardID = resolution.ID
	case domain.ResourceList:
		scope.ListID = resolution.ID
		if resolution.List != nil {
			scope.BoardID = resolution.List.BoardID
		}
	case domain.ResourceCard:
		scope.CardID = resolution.ID
		if resolution.Card != nil {
			scope.BoardID = resolution.Card.BoardID
			scope.ListID = resolution.Card.ListID
		}
	case domain.ResourceChecklist:
		scope.ChecklistID = resolution.ID
		if resolution.Checklist != nil {
			scope.CardID = resolution.Checklist.CardID
		}
	}
	return scope, nil
}

// boardScope picks the board a list lookup runs against: explicit
// parent first, then session.
func (s *Service) boardScope(ctx context.Context, conversation string, creds domain.Credentials, parent domain.ParentScope) (string, error) {
	if !parent.IsZero() {
		if parent.Kind != domain.ResourceBoard {
			return "", &domain.ValidationError{Msg: fmt.Sprintf("a list cannot be scoped by a %s", parent.Kind)}
		}
		resolution, err := s.ResolveBoard(ctx, conversation, creds, parent.Ref)
		if err != nil {
			return "", err
		}
		return resolution.ID, nil
	}

	boardID, err := s.sessionValue(ctx, conversation, domain.SessionFieldBoard)
	if err != nil {
		return "", err
	}
	if boardID == "" {
		return "", &domain.MissingContextError{Resource: domain.ResourceBoard}
	}
	return boardID, nil
}

// cardScopes determines the (list, board) scopes a card name lookup may
// use. An explicit parent replaces the session defaults entirely.
func (s *Service) cardScopes(ctx context.Context, conversation string, creds domain.Credentials, parent domain.ParentScope) (listID, boardID string, err error) {
	if !parent.IsZero() {
		switch parent.Kind {
		case domain.ResourceList:
			resolution, err := s.ResolveList(ctx, conversation, creds, parent.Ref, domain.ParentScope{})
			if err != nil {
				return "", "", err
			}
			listID = resolution.ID
			if resolution.List != nil {
				boardID = resolution.List.BoardID
			}
			return listID, boardID, nil
		case domain.ResourceBoard:
			resolution, err := s.ResolveBoard(ctx, conversation, creds, parent.Ref)
			if err != nil {
				return "", "", err
			}
			return "", resolution.ID, nil
		default:
			return "", "", &domain.ValidationError{Msg: fmt.Sprintf("a card cannot be scoped by a %s", parent.Kind)}
		}
	}

	listID, err = s.sessionValue(ctx, conversation, domain.SessionFieldList)
	if err != nil {
		return "", "", err
	}
	boardID, err = s.sessionValue(ctx, conversation, domain.SessionFieldBoard)
	if err != nil {
		return "", "", err
	}
	return listID, boardID, nil
}

// cardScopeForChecklist finds the owning card for a checklist lookup:
// an explicit card parent, else the session card.
func (s *Service) cardScopeForChecklist(ctx context.Context, conversation string, creds domain.Credentials, parent domain.ParentScope) (string, error) {
	if !parent.IsZero() {
		if parent.Kind != domain.ResourceCard {
			return "", &domain.ValidationError{Msg: fmt.Sprintf("a checklist cannot be scoped by a %s", parent.Kind)}
		}
		resolution, err := s.ResolveCard(ctx, conversation, creds, parent.Ref, domain.ParentScope{})
		if err != nil {
			return "", err
		}
		return resolution.ID, nil
	}

	cardID, err := s.sessionValue(ctx, conversation, domain.SessionFieldCard)
	if err != nil {
		return "", err
	}
	if cardID == "" {
		return "", &domain.MissingContextError{Resource: domain.ResourceCard}
	}
	return cardID, nil
}

func (s *Service) matchCardInList(ctx context.Context, creds domain.Credentials, listID, ref string) (*domain.Card, error) {
	cards, err := s.gateway.ListCards(ctx, creds, listID, s.opts.ListCardsLimit)
	if err != nil {
		return nil, err
	}
	matched, err := MatchNamed(domain.ResourceCard, cardItems(cards), ref)
	if err != nil {
		return nil, err
	}
	return cardByID(cards, matched.ID), nil
}

func (s *Service) matchCardOnBoard(ctx context.Context, creds domain.Credentials, boardID, ref string) (*domain.Card, error) {
	cards, err := s.gateway.SearchCards(ctx, creds, boardID, ref, s.opts.SearchLimit)
	if err != nil {
		return nil, err
	}
	matched, err := MatchNamed(domain.ResourceCard, cardItems(cards), ref)
	if err != nil {
		return nil, err
	}
	return cardByID(cards, matched.ID), nil
}

// isNotFound reports a matcher miss. An ambiguous match never falls
// back to board search: multiple candidates on the scoped list is an
// answer worth showing, not an absence.
func isNotFound(err error) bool {
	var notFound *domain.NotFoundError
	return errors.As(err, &notFound)
}

func checkItemResolution(checklist *domain.Checklist, item *domain.CheckItem) Resolution {
	return Resolution{
		Resource:  domain.ResourceCheckItem,
		ID:        item.ID,
		Checklist: checklist,
		CheckItem: item,
	}
}

func boardItems(boards []domain.Board) []NamedItem {
	items := make([]NamedItem, 0, len(boards))
	for _, board := range boards {
		items = append(items, NamedItem{ID: board.ID, Name: board.Name})
	}
	return items
}

func listItems(lists []domain.List) []NamedItem {
	items := make([]NamedItem, 0, len(lists))
	for _, list := range lists {
		items = append(items, NamedItem{ID: list.ID, Name: list.Name})
	}
	return items
}

func cardItems(cards []domain.Card) []NamedItem {
	items := make([]NamedItem, 0, len(cards))
	for _, card := range cards {
		items = append(items, NamedItem{ID: card.ID, Name: card.Name})
	}
	return items
}

func checklistItems(checklists []domain.Checklist) []NamedItem {
	items := make([]NamedItem, 0, len(checklists))
	for _, checklist := range checklists {
		items = append(items, NamedItem{ID: checklist.ID, Name: checklist.Name})
	}
	return items
}

func checkItemItems(checkItems []domain.CheckItem) []NamedItem {
	items := make([]NamedItem, 0, len(checkItems))
	for _, item := range checkItems {
		items = append(items, NamedItem{ID: item.ID, Name: item.Name})
	}
	return items
}

func boardByID(boards []domain.Board, id string) *domain.Board {
	for i := range boards {
		if boards[i].ID == id {
			return &boards[i]
		}
	}
	return nil
}

func listByID(lists []domain.List, id string) *domain.List {
	for i := range lists {
		if lists[i].ID == id {
			return &lists[i]
		}
	}
	return nil
}

func cardByID(cards []domain.Card, id string) *domain.Card {
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i]
		}
	}
	return nil
}
