package trello

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func (c *Client) ListCards(ctx context.Context, creds domain.Credentials, listID string, limit int) ([]domain.Card, error) {
	params := url.Values{}
	params.Set("fields", "id,name,url,closed,idBoard,idList,due,dueComplete")
	params.Set("limit", strconv.Itoa(clamp(limit, 1, 100)))

	endpoint := "/lists/" + listID + "/cards"
	body, err := c.request(ctx, creds, http.MethodGet, endpoint, params)
	if err != nil {
		return nil, err
	}

	var cards []domain.Card
	if err := decodeList(endpoint, body, &cards); err != nil {
		return nil, err
	}
	return openCards(cards), nil
}

func (c *Client) GetCard(ctx context.Context, creds domain.Credentials, cardID string) (domain.Card, error) {
	params := url.Values{}
	params.Set("fields", "id,name,desc,url,idBoard,idList,closed,due,dueComplete,dateLastActivity,idChecklists")

	body, err := c.request(ctx, creds, http.MethodGet, "/cards/"+cardID, params)
	if err != nil {
		return domain.Card{}, err
	}

	var card domain.Card
	if err := decodeObject("/cards/"+cardID, body, &card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

func (c *Client) CreateCard(ctx context.Context, creds domain.Credentials, listID, title, description string) (domain.Card, error) {
	params := url.Values{}
	params.Set("idList", listID)
	params.Set("name", title)
	params.Set("desc", description)
	params.Set("pos", "bottom")

	body, err := c.request(ctx, creds, http.MethodPost, "/cards", params)
	if err != nil {
		return domain.Card{}, err
	}

	var card domain.Card
	if err := decodeObject("/cards", body, &card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

func (c *Client) UpdateCard(ctx context.Context, creds domain.Credentials, cardID string, fields map[string]string) (domain.Card, error) {
	params := url.Values{}
	for key, value := range fields {
		params.Set(key, value)
	}

	body, err := c.request(ctx, creds, http.MethodPut, "/cards/"+cardID, params)
	if err != nil {
		return domain.Card{}, err
	}

	var card domain.Card
	if err := decodeObject("/cards/"+cardID, body, &card); err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

func (c *Client) ArchiveCard(ctx context.Context, creds domain.Credentials, cardID string) (domain.Card, error) {
	return c.UpdateCard(ctx, creds, cardID, map[string]string{"closed": "true"})
}

func (c *Client) DeleteCard(ctx context.Context, creds domain.Credentials, cardID string) error {
	_, err := c.request(ctx, creds, http.MethodDelete, "/cards/"+cardID, nil)
	return err
}

func (c *Client) AddComment(ctx context.Context, creds domain.Credentials, cardID, text string) (domain.CommentAction, error) {
	params := url.Values{}
	params.Set("text", text)

	endpoint := "/cards/" + cardID + "/actions/comments"
	body, err := c.request(ctx, creds, http.MethodPost, endpoint, params)
	if err != nil {
		return domain.CommentAction{}, err
	}

	var action domain.CommentAction
	if err := decodeObject(endpoint, body, &action); err != nil {
		return domain.CommentAction{}, err
	}
	return action, nil
}

func (c *Client) SearchCards(ctx context.Context, creds domain.Credentials, boardID, keyword string, limit int) ([]domain.Card, error) {
	params := url.Values{}
	params.Set("query", keyword)
	params.Set("idBoards", boardID)
	params.Set("modelTypes", "cards")
	params.Set("card_fields", "id,name,url,idBoard,idList,closed")
	params.Set("cards_limit", strconv.Itoa(clamp(limit, 1, 50)))

	body, err := c.request(ctx, creds, http.MethodGet, "/search", params)
	if err != nil {
		return nil, err
	}

	// The search endpoint wraps its results: an object with a "cards"
	// list. Both layers get shape-checked.
	var envelope struct {
		Cards json.RawMessage `json:"cards"`
	}
	if err := decodeObject("/search", body, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Cards) == 0 {
		return nil, nil
	}

	var cards []domain.Card
	if err := decodeList("/search.cards", envelope.Cards, &cards); err != nil {
		return nil, err
	}
	return openCards(cards), nil
}

func openCards(cards []domain.Card) []domain.Card {
	open := cards[:0]
	for _, card := range cards {
		if !card.Closed {
			open = append(open, card)
		}
	}
	return open
}
