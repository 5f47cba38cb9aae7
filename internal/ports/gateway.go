package ports

import (
	"context"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// Gateway is the typed surface of the remote Trello-style REST API. One
// method per endpoint; every call carries the caller's credentials and is
// a single request with no retries. List-returning methods exclude
// archived items, get-by-id methods do not.
type Gateway interface {
	ListBoards(ctx context.Context, creds domain.Credentials) ([]domain.Board, error)
	GetBoard(ctx context.Context, creds domain.Credentials, boardID string) (domain.Board, error)
	CreateBoard(ctx context.Context, creds domain.Credentials, name, description string) (domain.Board, error)
	UpdateBoard(ctx context.Context, creds domain.Credentials, boardID string, fields map[string]string) (domain.Board, error)
	ArchiveBoard(ctx context.Context, creds domain.Credentials, boardID string) (domain.Board, error)

	ListLists(ctx context.Context, creds domain.Credentials, boardID string) ([]domain.List, error)
	GetList(ctx context.Context, creds domain.Credentials, listID string) (domain.List, error)
	CreateList(ctx context.Context, creds domain.Credentials, boardID, name string) (domain.List, error)
	RenameList(ctx context.Context, creds domain.Credentials, listID, name string) (domain.List, error)
	ArchiveList(ctx context.Context, creds domain.Credentials, listID string) (domain.List, error)

	ListCards(ctx context.Context, creds domain.Credentials, listID string, limit int) ([]domain.Card, error)
	GetCard(ctx context.Context, creds domain.Credentials, cardID string) (domain.Card, error)
	CreateCard(ctx context.Context, creds domain.Credentials, listID, title, description string) (domain.Card, error)
	UpdateCard(ctx context.Context, creds domain.Credentials, cardID string, fields map[string]string) (domain.Card, error)
	ArchiveCard(ctx context.Context, creds domain.Credentials, cardID string) (domain.Card, error)
	DeleteCard(ctx context.Context, creds domain.Credentials, cardID string) error
	AddComment(ctx context.Context, creds domain.Credentials, cardID, text string) (domain.CommentAction, error)
	SearchCards(ctx context.Context, creds domain.Credentials, boardID, keyword string, limit int) ([]domain.Card, error)

	ListChecklists(ctx context.Context, creds domain.Credentials, cardID string) ([]domain.Checklist, error)
	GetChecklist(ctx context.Context, creds domain.Credentials, checklistID string) (domain.Checklist, error)
	CreateChecklist(ctx context.Context, creds domain.Credentials, cardID, name string) (domain.Checklist, error)
	UpdateChecklist(ctx context.Context, creds domain.Credentials, checklistID string, fields map[string]string) (domain.Checklist, error)
	DeleteChecklist(ctx context.Context, creds domain.Credentials, checklistID string) error
	AddCheckItem(ctx context.Context, creds domain.Credentials, checklistID, name string) (domain.CheckItem, error)
	UpdateCheckItem(ctx context.Context, creds domain.Credentials, cardID, checkItemID string, fields map[string]string) (domain.CheckItem, error)
	SetCheckItemState(ctx context.Context, creds domain.Credentials, cardID, checkItemID string, checked bool) (domain.CheckItem, error)
	DeleteCheckItem(ctx context.Context, creds domain.Credentials, checklistID, checkItemID string) error
}
