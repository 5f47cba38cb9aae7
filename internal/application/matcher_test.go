package application

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func TestMatchNamedExactWinsOverSubstring(t *testing.T) {
	t.Parallel()

	items := []NamedItem{
		{ID: "a", Name: "Design"},
		{ID: "b", Name: "Design Review"},
	}

	got, err := MatchNamed(domain.ResourceList, items, "Design")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	// Case-insensitive: exact still beats substring.
	got, err = MatchNamed(domain.ResourceList, items, "design")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestMatchNamedSubstring(t *testing.T) {
	t.Parallel()

	items := []NamedItem{
		{ID: "a", Name: "Sprint Backlog"},
		{ID: "b", Name: "Done"},
	}

	got, err := MatchNamed(domain.ResourceList, items, "backlog")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestMatchNamedTrimsQuery(t *testing.T) {
	t.Parallel()

	items := []NamedItem{{ID: "a", Name: "  Inbox  "}}

	got, err := MatchNamed(domain.ResourceList, items, " inbox ")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
}

func TestMatchNamedEmptyQuery(t *testing.T) {
	t.Parallel()

	_, err := MatchNamed(domain.ResourceBoard, []NamedItem{{ID: "a", Name: "x"}}, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestMatchNamedNotFound(t *testing.T) {
	t.Parallel()

	_, err := MatchNamed(domain.ResourceCard, []NamedItem{{ID: "a", Name: "Deploy"}}, "retro")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.ResourceCard, notFound.Resource)
	assert.Equal(t, "retro", notFound.Query)
}

func TestMatchNamedAmbiguousExact(t *testing.T) {
	t.Parallel()

	items := []NamedItem{
		{ID: "a", Name: "Todo"},
		{ID: "b", Name: "todo"},
		{ID: "c", Name: "Todo Extras"},
	}

	_, err := MatchNamed(domain.ResourceList, items, "todo")
	var ambiguousErr *domain.AmbiguousError
	require.ErrorAs(t, err, &ambiguousErr)
	require.Len(t, ambiguousErr.Candidates, 2)
	assert.Contains(t, ambiguousErr.Error(), "Todo (a)")
	assert.Contains(t, ambiguousErr.Error(), "todo (b)")
}

func TestMatchNamedAmbiguousSubstringCapsCandidates(t *testing.T) {
	t.Parallel()

	var items []NamedItem
	for i := 0; i < 8; i++ {
		items = append(items, NamedItem{ID: fmt.Sprintf("id%d", i), Name: fmt.Sprintf("Task %d", i)})
	}

	_, err := MatchNamed(domain.ResourceCard, items, "task")
	var ambiguousErr *domain.AmbiguousError
	require.ErrorAs(t, err, &ambiguousErr)
	assert.Len(t, ambiguousErr.Candidates, 5)
}
