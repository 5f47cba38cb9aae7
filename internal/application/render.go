package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// Listing caps. Name matching sees the full result; only the rendered
// text is bounded so chat replies stay readable.
const (
	maxRenderedBoards     = 20
	maxRenderedLists      = 30
	maxRenderedCheckItems = 20
)

// UserMessage converts any error from the service into the one-line text
// shown to the conversation. Auth and remote failures get a stable
// prefix; everything else already reads as a sentence.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrAuth):
		return "Trello authentication failed. Check key/token."
	case domain.IsRemote(err):
		return fmt.Sprintf("Trello error: %v", err)
	default:
		return err.Error()
	}
}

func renderBoards(boards []domain.Board) string {
	if len(boards) == 0 {
		return "No boards found."
	}
	lines := []string{"Boards:"}
	for i, board := range boards {
		if i == maxRenderedBoards {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, board.Name, board.ID))
	}
	return strings.Join(lines, "\n")
}

func renderBoard(board domain.Board) string {
	return strings.Join([]string{
		fmt.Sprintf("Board: %s (%s)", board.Name, board.ID),
		fmt.Sprintf("Closed: %v", board.Closed),
		fmt.Sprintf("Last Activity: %s", board.LastActivity),
		fmt.Sprintf("URL: %s", board.URL),
		fmt.Sprintf("Desc: %s", orDash(board.Description)),
	}, "\n")
}

func renderLists(boardID string, lists []domain.List) string {
	if len(lists) == 0 {
		return "No lists found on this board."
	}
	lines := []string{fmt.Sprintf("Lists on board %s:", boardID)}
	for i, list := range lists {
		if i == maxRenderedLists {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, list.Name, list.ID))
	}
	return strings.Join(lines, "\n")
}

func renderList(list domain.List) string {
	return strings.Join([]string{
		fmt.Sprintf("List: %s (%s)", list.Name, list.ID),
		fmt.Sprintf("Board: %s", list.BoardID),
		fmt.Sprintf("Closed: %v", list.Closed),
	}, "\n")
}

func renderCards(listID string, cards []domain.Card) string {
	if len(cards) == 0 {
		return "No cards found on this list."
	}
	lines := []string{fmt.Sprintf("Cards on list %s:", listID)}
	for i, card := range cards {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, card.Name, card.ID))
		if card.Due != "" {
			lines = append(lines, fmt.Sprintf("   due=%s complete=%v", card.Due, card.DueComplete))
		}
	}
	return strings.Join(lines, "\n")
}

func renderCard(card domain.Card) string {
	return strings.Join([]string{
		fmt.Sprintf("Card: %s (%s)", card.Name, card.ID),
		fmt.Sprintf("Board: %s", card.BoardID),
		fmt.Sprintf("List: %s", card.ListID),
		fmt.Sprintf("Closed: %v", card.Closed),
		fmt.Sprintf("Due: %s complete=%v", orDash(card.Due), card.DueComplete),
		fmt.Sprintf("Checklists: %d", len(card.ChecklistIDs)),
		fmt.Sprintf("URL: %s", card.URL),
		fmt.Sprintf("Desc: %s", orDash(card.Description)),
	}, "\n")
}

func renderSearch(keyword string, cards []domain.Card) string {
	if len(cards) == 0 {
		return "No cards matched this keyword."
	}
	lines := []string{fmt.Sprintf("Search results for '%s':", keyword)}
	for i, card := range cards {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, card.Name, card.ID))
		if card.URL != "" {
			lines = append(lines, "   "+card.URL)
		}
	}
	return strings.Join(lines, "\n")
}

func renderChecklists(cardID string, checklists []domain.Checklist) string {
	if len(checklists) == 0 {
		return "No checklists found on this card."
	}
	lines := []string{fmt.Sprintf("Checklists on card %s:", cardID)}
	for i, checklist := range checklists {
		lines = append(lines, fmt.Sprintf("%d. %s (%s) items=%d", i+1, checklist.Name, checklist.ID, len(checklist.Items)))
		lines = append(lines, renderCheckItems(checklist.Items)...)
	}
	return strings.Join(lines, "\n")
}

func renderChecklist(checklist domain.Checklist) string {
	lines := []string{fmt.Sprintf("Checklist: %s (%s) items=%d", checklist.Name, checklist.ID, len(checklist.Items))}
	lines = append(lines, renderCheckItems(checklist.Items)...)
	return strings.Join(lines, "\n")
}

func renderCheckItems(items []domain.CheckItem) []string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		if i == maxRenderedCheckItems {
			break
		}
		mark := "[ ]"
		if item.State == domain.CheckItemStateComplete {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("   %s %s (%s)", mark, item.Name, item.ID))
	}
	return lines
}

// RenderSessionContext is the plain-text form of the scope view, used by
// the MCP tool. The cobra scope command has a styled variant.
func RenderSessionContext(conversation string, sc domain.SessionContext) string {
	return strings.Join([]string{
		fmt.Sprintf("Session: %s", conversation),
		fmt.Sprintf("Board: %s", orDash(sc.BoardID)),
		fmt.Sprintf("List: %s", orDash(sc.ListID)),
		fmt.Sprintf("Card: %s", orDash(sc.CardID)),
		fmt.Sprintf("Done list: %s", orDash(sc.DoneListID)),
	}, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
