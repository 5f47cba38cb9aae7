package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func TestReadBoards(t *testing.T) {
	gateway := &stubGateway{boards: []domain.Board{
		{ID: boardID1, Name: "Work"},
		{ID: boardID2, Name: "Personal"},
	}}
	svc := newTestService(gateway, &memStore{}, ResolverOptions{})

	out, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceBoard, domain.ActionList, "", domain.ParentScope{}, false)
	require.NoError(t, err)
	require.Contains(t, out, "Boards:")
	require.Contains(t, out, "1. Work ("+boardID1+")")
	require.Contains(t, out, "2. Personal ("+boardID2+")")
}

func TestReadBoardGetSyncOptIn(t *testing.T) {
	gateway := &stubGateway{boards: []domain.Board{{ID: boardID1, Name: "Work", URL: "https://t/b/1"}}}
	store := &memStore{}
	svc := newTestService(gateway, store, ResolverOptions{})

	out, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceBoard, domain.ActionGet, boardID1, domain.ParentScope{}, false)
	require.NoError(t, err)
	require.Contains(t, out, "Board: Work ("+boardID1+")")
	require.Empty(t, sessionField(t, store, domain.SessionFieldBoard))

	_, err = svc.Read(context.Background(), convo, testCreds, domain.ResourceBoard, domain.ActionGet, boardID1, domain.ParentScope{}, true)
	require.NoError(t, err)
	require.Equal(t, boardID1, sessionField(t, store, domain.SessionFieldBoard))
}

func TestReadListsUsesRefAsBoard(t *testing.T) {
	gateway := &stubGateway{lists: []domain.List{{ID: listID1, Name: "Todo", BoardID: boardID1}}}
	svc := newTestService(gateway, &memStore{}, ResolverOptions{})

	out, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceList, domain.ActionList, boardID1, domain.ParentScope{}, false)
	require.NoError(t, err)
	require.Contains(t, out, "Lists on board "+boardID1+":")
	require.Equal(t, boardID1, gateway.lastBoardID)
}

func TestReadCardsOnSessionList(t *testing.T) {
	gateway := &stubGateway{cards: []domain.Card{
		{ID: cardID1, Name: "Write report", Due: "2026-09-01T12:00:00.000Z"},
	}}
	store := &memStore{}
	seedSession(t, store, convo, map[domain.SessionField]string{domain.SessionFieldList: listID1})
	svc := newTestService(gateway, store, ResolverOptions{})

	out, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceCard, domain.ActionList, "", domain.ParentScope{}, false)
	require.NoError(t, err)
	require.Contains(t, out, "Cards on list "+listID1+":")
	require.Contains(t, out, "due=2026-09-01T12:00:00.000Z complete=false")
	require.Equal(t, defaultListCardsLimit, gateway.lastLimit)
}

func TestReadCardGetFetchesFullCard(t *testing.T) {
	gateway := &stubGateway{got: domain.Card{
		ID: cardID1, Name: "Write report", BoardID: boardID1, ListID: listID1,
		ChecklistIDs: []string{checkID1}, URL: "https://t/c/1",
	}}
	store := &memStore{}
	svc := newTestService(gateway, store, ResolverOptions{})

	out, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceCard, domain.ActionGet, cardID1, domain.ParentScope{}, true)
	require.NoError(t, err)
	require.Contains(t, out, "Card: Write report ("+cardID1+")")
	require.Contains(t, out, "Checklists: 1")
	require.Contains(t, out, "Due: - complete=false")
	require.Equal(t, cardID1, sessionField(t, store, domain.SessionFieldCard))
	require.Equal(t, listID1, sessionField(t, store, domain.SessionFieldList))
}

func TestReadSearchNeedsKeyword(t *testing.T) {
	gateway := &stubGateway{}
	store := &memStore{}
	seedSession(t, store, convo, map[domain.SessionField]string{domain.SessionFieldBoard: boardID1})
	svc := newTestService(gateway, store, ResolverOptions{})

	_, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceCard, domain.ActionSearch, "", domain.ParentScope{}, false)
	var invalid *domain.ValidationError
	require.ErrorAs(t, err, &invalid)
	require.Zero(t, gateway.total())
}

func TestReadSearchOnSessionBoard(t *testing.T) {
	gateway := &stubGateway{searchHits: []domain.Card{{ID: cardID1, Name: "Report", URL: "https://t/c/1"}}}
	store := &memStore{}
	seedSession(t, store, convo, map[domain.SessionField]string{domain.SessionFieldBoard: boardID1})
	svc := newTestService(gateway, store, ResolverOptions{})

	out, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceCard, domain.ActionSearch, "report", domain.ParentScope{}, false)
	require.NoError(t, err)
	require.Contains(t, out, "Search results for 'report':")
	require.Contains(t, out, "   https://t/c/1")
	require.Equal(t, boardID1, gateway.lastBoardID)
	require.Equal(t, defaultSearchLimit, gateway.lastLimit)
}

func TestReadChecklistsOnCard(t *testing.T) {
	gateway := &stubGateway{checklists: []domain.Checklist{{
		ID: checkID1, Name: "Steps", CardID: cardID1,
		Items: []domain.CheckItem{
			{ID: itemID1, Name: "Draft", State: domain.CheckItemStateComplete},
			{ID: itemID2, Name: "Review", State: domain.CheckItemStateIncomplete},
		},
	}}}
	svc := newTestService(gateway, &memStore{}, ResolverOptions{})

	out, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceChecklist, domain.ActionList, cardID1, domain.ParentScope{}, false)
	require.NoError(t, err)
	require.Contains(t, out, "Checklists on card "+cardID1+":")
	require.Contains(t, out, "1. Steps ("+checkID1+") items=2")
	require.Contains(t, out, "[x] Draft ("+itemID1+")")
	require.Contains(t, out, "[ ] Review ("+itemID2+")")
}

func TestReadUnsupportedPair(t *testing.T) {
	svc := newTestService(&stubGateway{}, &memStore{}, ResolverOptions{})

	_, err := svc.Read(context.Background(), convo, testCreds, domain.ResourceCheckItem, domain.ActionGet, itemID1, domain.ParentScope{}, false)
	var invalid *domain.ValidationError
	require.ErrorAs(t, err, &invalid)
}
