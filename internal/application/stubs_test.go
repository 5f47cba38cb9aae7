package application

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/potatoworkshop/trellobot/internal/domain"
	"github.com/potatoworkshop/trellobot/internal/ports"
)

// stubGateway is a canned in-memory Gateway that counts calls, so tests
// can assert not just what resolved but which remote lookups it cost.
type stubGateway struct {
	boards     []domain.Board
	lists      []domain.List
	cards      []domain.Card
	checklists []domain.Checklist
	searchHits []domain.Card
	got        domain.Card

	listCardsErr error
	searchErr    error

	calls map[string]int

	lastListID  string
	lastLimit   int
	lastBoardID string
	lastKeyword string
	lastCardID  string
	lastItemID  string
	lastChecked bool
	lastName    string
	lastText    string
	lastFields  map[string]string
}

var _ ports.Gateway = (*stubGateway)(nil)

func (g *stubGateway) record(name string) {
	if g.calls == nil {
		g.calls = map[string]int{}
	}
	g.calls[name]++
}

func (g *stubGateway) total() int {
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}

func (g *stubGateway) ListBoards(context.Context, domain.Credentials) ([]domain.Board, error) {
	g.record("ListBoards")
	return g.boards, nil
}

func (g *stubGateway) GetBoard(_ context.Context, _ domain.Credentials, boardID string) (domain.Board, error) {
	g.record("GetBoard")
	g.lastBoardID = boardID
	for _, b := range g.boards {
		if b.ID == boardID {
			return b, nil
		}
	}
	return domain.Board{ID: boardID}, nil
}

func (g *stubGateway) CreateBoard(_ context.Context, _ domain.Credentials, name, description string) (domain.Board, error) {
	g.record("CreateBoard")
	g.lastName = name
	return domain.Board{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", Name: name, Description: description}, nil
}

func (g *stubGateway) UpdateBoard(_ context.Context, _ domain.Credentials, boardID string, fields map[string]string) (domain.Board, error) {
	g.record("UpdateBoard")
	g.lastBoardID = boardID
	g.lastFields = fields
	return domain.Board{ID: boardID, Name: fields["name"]}, nil
}

func (g *stubGateway) ArchiveBoard(_ context.Context, _ domain.Credentials, boardID string) (domain.Board, error) {
	g.record("ArchiveBoard")
	g.lastBoardID = boardID
	return domain.Board{ID: boardID, Closed: true}, nil
}

func (g *stubGateway) ListLists(_ context.Context, _ domain.Credentials, boardID string) ([]domain.List, error) {
	g.record("ListLists")
	g.lastBoardID = boardID
	return g.lists, nil
}

func (g *stubGateway) GetList(_ context.Context, _ domain.Credentials, listID string) (domain.List, error) {
	g.record("GetList")
	g.lastListID = listID
	for _, l := range g.lists {
		if l.ID == listID {
			return l, nil
		}
	}
	return domain.List{ID: listID}, nil
}

func (g *stubGateway) CreateList(_ context.Context, _ domain.Credentials, boardID, name string) (domain.List, error) {
	g.record("CreateList")
	g.lastBoardID = boardID
	g.lastName = name
	return domain.List{ID: "feedfacefeedfacefeedface", Name: name, BoardID: boardID}, nil
}

func (g *stubGateway) RenameList(_ context.Context, _ domain.Credentials, listID, name string) (domain.List, error) {
	g.record("RenameList")
	g.lastListID = listID
	g.lastName = name
	return domain.List{ID: listID, Name: name}, nil
}

func (g *stubGateway) ArchiveList(_ context.Context, _ domain.Credentials, listID string) (domain.List, error) {
	g.record("ArchiveList")
	g.lastListID = listID
	return domain.List{ID: listID, Closed: true}, nil
}

func (g *stubGateway) ListCards(_ context.Context, _ domain.Credentials, listID string, limit int) ([]domain.Card, error) {
	g.record("ListCards")
	g.lastListID = listID
	g.lastLimit = limit
	if g.listCardsErr != nil {
		return nil, g.listCardsErr
	}
	return g.cards, nil
}

func (g *stubGateway) GetCard(_ context.Context, _ domain.Credentials, cardID string) (domain.Card, error) {
	g.record("GetCard")
	g.lastCardID = cardID
	if g.got.ID != "" {
		return g.got, nil
	}
	return domain.Card{ID: cardID}, nil
}

func (g *stubGateway) CreateCard(_ context.Context, _ domain.Credentials, listID, title, description string) (domain.Card, error) {
	g.record("CreateCard")
	g.lastListID = listID
	g.lastName = title
	return domain.Card{ID: "cccccccccccccccccccccccc", Name: title, Description: description, ListID: listID}, nil
}

func (g *stubGateway) UpdateCard(_ context.Context, _ domain.Credentials, cardID string, fields map[string]string) (domain.Card, error) {
	g.record("UpdateCard")
	g.lastCardID = cardID
	g.lastFields = fields
	return domain.Card{ID: cardID, Name: fields["name"], ListID: fields["idList"]}, nil
}

func (g *stubGateway) ArchiveCard(_ context.Context, _ domain.Credentials, cardID string) (domain.Card, error) {
	g.record("ArchiveCard")
	g.lastCardID = cardID
	return domain.Card{ID: cardID, Closed: true}, nil
}

func (g *stubGateway) DeleteCard(_ context.Context, _ domain.Credentials, cardID string) error {
	g.record("DeleteCard")
	g.lastCardID = cardID
	return nil
}

func (g *stubGateway) AddComment(_ context.Context, _ domain.Credentials, cardID, text string) (domain.CommentAction, error) {
	g.record("AddComment")
	g.lastCardID = cardID
	g.lastText = text
	return domain.CommentAction{ID: "act1"}, nil
}

func (g *stubGateway) SearchCards(_ context.Context, _ domain.Credentials, boardID, keyword string, limit int) ([]domain.Card, error) {
	g.record("SearchCards")
	g.lastBoardID = boardID
	g.lastKeyword = keyword
	g.lastLimit = limit
	if g.searchErr != nil {
		return nil, g.searchErr
	}
	return g.searchHits, nil
}

func (g *stubGateway) ListChecklists(_ context.Context, _ domain.Credentials, cardID string) ([]domain.Checklist, error) {
	g.record("ListChecklists")
	g.lastCardID = cardID
	return g.checklists, nil
}

func (g *stubGateway) GetChecklist(_ context.Context, _ domain.Credentials, checklistID string) (domain.Checklist, error) {
	g.record("GetChecklist")
	for _, c := range g.checklists {
		if c.ID == checklistID {
			return c, nil
		}
	}
	return domain.Checklist{ID: checklistID}, nil
}

func (g *stubGateway) CreateChecklist(_ context.Context, _ domain.Credentials, cardID, name string) (domain.Checklist, error) {
	g.record("CreateChecklist")
	g.lastCardID = cardID
	g.lastName = name
	return domain.Checklist{ID: "ca11ab1eca11ab1eca11ab1e", Name: name, CardID: cardID}, nil
}

func (g *stubGateway) UpdateChecklist(_ context.Context, _ domain.Credentials, checklistID string, fields map[string]string) (domain.Checklist, error) {
	g.record("UpdateChecklist")
	g.lastFields = fields
	return domain.Checklist{ID: checklistID, Name: fields["name"]}, nil
}

func (g *stubGateway) DeleteChecklist(_ context.Context, _ domain.Credentials, checklistID string) error {
	g.record("DeleteChecklist")
	return nil
}

func (g *stubGateway) AddCheckItem(_ context.Context, _ domain.Credentials, checklistID, name string) (domain.CheckItem, error) {
	g.record("AddCheckItem")
	g.lastName = name
	return domain.CheckItem{ID: "ba5eba11ba5eba11ba5eba11", Name: name, State: domain.CheckItemStateIncomplete}, nil
}

func (g *stubGateway) UpdateCheckItem(_ context.Context, _ domain.Credentials, cardID, checkItemID string, fields map[string]string) (domain.CheckItem, error) {
	g.record("UpdateCheckItem")
	g.lastCardID = cardID
	g.lastItemID = checkItemID
	g.lastFields = fields
	return domain.CheckItem{ID: checkItemID, Name: fields["name"]}, nil
}

func (g *stubGateway) SetCheckItemState(_ context.Context, _ domain.Credentials, cardID, checkItemID string, checked bool) (domain.CheckItem, error) {
	g.record("SetCheckItemState")
	g.lastCardID = cardID
	g.lastItemID = checkItemID
	g.lastChecked = checked
	return domain.CheckItem{ID: checkItemID}, nil
}

func (g *stubGateway) DeleteCheckItem(_ context.Context, _ domain.Credentials, checklistID, checkItemID string) error {
	g.record("DeleteCheckItem")
	g.lastItemID = checkItemID
	return nil
}

// memStore is a map-backed SessionStore.
type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

var _ ports.SessionStore = (*memStore)(nil)

func (m *memStore) Get(_ context.Context, conversation string, field domain.SessionField) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[conversation+"/"+string(field)], nil
}

func (m *memStore) Put(_ context.Context, conversation string, field domain.SessionField, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[conversation+"/"+string(field)] = value
	return nil
}

func seedSession(t *testing.T, store *memStore, conversation string, fields map[domain.SessionField]string) {
	t.Helper()
	for field, value := range fields {
		if err := store.Put(context.Background(), conversation, field, value); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestService(gateway ports.Gateway, store ports.SessionStore, opts ResolverOptions) *Service {
	return NewService(gateway, store, opts, log.New(io.Discard))
}

var testCreds = domain.Credentials{APIKey: "k", Token: "t"}

const (
	convo = "conv-1"

	boardID1 = "aaaaaaaaaaaaaaaaaaaaaaa1"
	boardID2 = "aaaaaaaaaaaaaaaaaaaaaaa2"
	listID1  = "bbbbbbbbbbbbbbbbbbbbbbb1"
	listID2  = "bbbbbbbbbbbbbbbbbbbbbbb2"
	cardID1  = "ccccccccccccccccccccccc1"
	cardID2  = "ccccccccccccccccccccccc2"
	checkID1 = "ddddddddddddddddddddddd1"
	itemID1  = "eeeeeeeeeeeeeeeeeeeeeee1"
	itemID2  = "eeeeeeeeeeeeeeeeeeeeeee2"
)
