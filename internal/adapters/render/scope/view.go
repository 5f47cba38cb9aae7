package scope

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// RenderOptions carry display-only context for the scope view.
type RenderOptions struct {
	// Backend labels the session store in the header ("file", "redis").
	Backend string

	// Names are optional display names for the selected IDs, resolved
	// by the caller when it is worth the extra lookups.
	Names map[domain.SessionField]string
}

func renderView(conversation string, sc domain.SessionContext, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("session: %s", conversation)
	if opts.Backend != "" {
		header += fmt.Sprintf(" (%s)", opts.Backend)
	}

	lines := []string{
		s.title.Render("Trello Session Scope"),
		s.header.Render(header),
	}

	rows := []struct {
		label string
		field domain.SessionField
		id    string
	}{
		{"board", domain.SessionFieldBoard, sc.BoardID},
		{"list", domain.SessionFieldList, sc.ListID},
		{"card", domain.SessionFieldCard, sc.CardID},
		{"done list", domain.SessionFieldDoneList, sc.DoneListID},
	}
	for _, row := range rows {
		lines = append(lines, scopeLine(row.label, row.id, opts.Names[row.field], s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func scopeLine(label, id, name string, s styles) string {
	key := s.key.Render(fmt.Sprintf("%-10s", label+":"))
	if id == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, key, " ", s.unset.Render("not set"))
	}

	parts := []string{key, " ", s.value.Render(id)}
	if name != "" {
		parts = append(parts, " ", s.name.Render(fmt.Sprintf("(%s)", name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
