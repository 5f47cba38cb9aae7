package trello

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

var testCreds = domain.Credentials{APIKey: "k", Token: "t"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, time.Second, nil)
}

func TestListBoardsFiltersClosedAndSendsCredentials(t *testing.T) {
	t.Parallel()

	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		assert.Equal(t, "/members/me/boards", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"Open","closed":false},
			{"id":"2","name":"Closed","closed":true}
		]`))
	})

	boards, err := client.ListBoards(context.Background(), testCreds)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "1", boards[0].ID)

	assert.Contains(t, query, "key=k")
	assert.Contains(t, query, "token=t")
	assert.Contains(t, query, "fields=")
}

func TestGetBoardDoesNotFilterClosed(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"2","name":"Archived","closed":true}`))
	})

	board, err := client.GetBoard(context.Background(), testCreds, "2")
	require.NoError(t, err)
	assert.True(t, board.Closed)
	assert.Equal(t, "Archived", board.Name)
}

func TestListCardsClampsLimitAndFiltersClosed(t *testing.T) {
	t.Parallel()

	var limit string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`[
			{"id":"a","name":"Live","closed":false},
			{"id":"b","name":"Gone","closed":true}
		]`))
	})

	cards, err := client.ListCards(context.Background(), testCreds, "l1", 500)
	require.NoError(t, err)
	assert.Equal(t, "100", limit)
	require.Len(t, cards, 1)
	assert.Equal(t, "a", cards[0].ID)

	_, err = client.ListCards(context.Background(), testCreds, "l1", -3)
	require.NoError(t, err)
	assert.Equal(t, "1", limit)
}

func TestSearchCardsClampsLimitAndUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	var q map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		_, _ = w.Write([]byte(`{"cards":[
			{"id":"a","name":"Fix login","closed":false},
			{"id":"b","name":"Old fix","closed":true}
		]}`))
	})

	cards, err := client.SearchCards(context.Background(), testCreds, "b1", "fix", 99)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "a", cards[0].ID)

	assert.Equal(t, "fix", q["query"][0])
	assert.Equal(t, "b1", q["idBoards"][0])
	assert.Equal(t, "cards", q["modelTypes"][0])
	assert.Equal(t, "50", q["cards_limit"][0])
}

func TestSearchCardsMissingCardsKey(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	cards, err := client.SearchCards(context.Background(), testCreds, "b1", "fix", 10)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestAuthFailureMapsToErrAuth(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.ListBoards(context.Background(), testCreds)
		assert.ErrorIs(t, err, domain.ErrAuth)
	}
}

func TestAPIErrorCarriesTruncatedBody(t *testing.T) {
	t.Parallel()

	longBody := strings.Repeat("x", 1000)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(longBody))
	})

	_, err := client.GetCard(context.Background(), testCreds, "c1")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Len(t, apiErr.Detail, 300)
	assert.True(t, domain.IsRemote(err))
}

func TestTransportFailureMapsToNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	client := NewClient(server.URL, time.Second, nil)

	_, err := client.ListBoards(context.Background(), testCreds)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "Network error")
	assert.True(t, domain.IsRemote(err))
}

func TestTimeoutMapsToNetworkError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.http.Timeout = 20 * time.Millisecond

	_, err := client.ListBoards(context.Background(), testCreds)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Error(), "Network error")
}

func TestEmptyBodyReadsAsEmptyObject(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	card, err := client.GetCard(context.Background(), testCreds, "c1")
	require.NoError(t, err)
	assert.Zero(t, card)

	require.NoError(t, client.DeleteCard(context.Background(), testCreds, "c1"))
}

func TestNonJSONObjectBodyKeepsRawText(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("maintenance in progress, retry later"))
	})

	card, err := client.GetCard(context.Background(), testCreds, "c1")
	require.NoError(t, err)
	assert.Empty(t, card.ID)
	assert.Equal(t, "maintenance in progress, retry later", card.RawText)

	board, err := client.GetBoard(context.Background(), testCreds, "b1")
	require.NoError(t, err)
	assert.Empty(t, board.ID)
	assert.Equal(t, "maintenance in progress, retry later", board.RawText)
}

func TestShapeErrors(t *testing.T) {
	t.Parallel()

	t.Run("object where list expected", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"1"}`))
		})

		_, err := client.ListBoards(context.Background(), testCreds)
		var shapeErr *domain.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "object", shapeErr.Got)
		assert.True(t, domain.IsRemote(err))
	})

	t.Run("list with non-object element", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"id":"1"},"stray"]`))
		})

		_, err := client.ListLists(context.Background(), testCreds, "b1")
		var shapeErr *domain.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Contains(t, shapeErr.Got, "string")
	})

	t.Run("list where object expected", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := client.GetBoard(context.Background(), testCreds, "b1")
		var shapeErr *domain.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, "list", shapeErr.Got)
	})
}

func TestSetCheckItemState(t *testing.T) {
	t.Parallel()

	var path, state string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		state = r.URL.Query().Get("state")
		_, _ = w.Write([]byte(`{"id":"ci1","name":"step","state":"complete"}`))
	})

	item, err := client.SetCheckItemState(context.Background(), testCreds, "c1", "ci1", true)
	require.NoError(t, err)
	assert.Equal(t, "/cards/c1/checkItem/ci1", path)
	assert.Equal(t, "complete", state)
	assert.Equal(t, domain.CheckItemStateComplete, item.State)

	_, err = client.SetCheckItemState(context.Background(), testCreds, "c1", "ci1", false)
	require.NoError(t, err)
	assert.Equal(t, "incomplete", state)
}

func TestArchiveCardSetsClosed(t *testing.T) {
	t.Parallel()

	var method, closed string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		closed = r.URL.Query().Get("closed")
		_, _ = w.Write([]byte(`{"id":"c1","closed":true}`))
	})

	card, err := client.ArchiveCard(context.Background(), testCreds, "c1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "true", closed)
	assert.True(t, card.Closed)
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListBoards(ctx, testCreds)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "Network error")
}
