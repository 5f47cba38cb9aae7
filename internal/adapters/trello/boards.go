package trello

import (
	"context"
	"net/http"
	"net/url"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func (c *Client) ListBoards(ctx context.Context, creds domain.Credentials) ([]domain.Board, error) {
	params := url.Values{}
	params.Set("fields", "id,name,url,closed")

	body, err := c.request(ctx, creds, http.MethodGet, "/members/me/boards", params)
	if err != nil {
		return nil, err
	}

	var boards []domain.Board
	if err := decodeList("/members/me/boards", body, &boards); err != nil {
		return nil, err
	}

	open := boards[:0]
	for _, board := range boards {
		if !board.Closed {
			open = append(open, board)
		}
	}
	return open, nil
}

func (c *Client) GetBoard(ctx context.Context, creds domain.Credentials, boardID string) (domain.Board, error) {
	params := url.Values{}
	params.Set("fields", "id,name,desc,url,closed,dateLastActivity")

	body, err := c.request(ctx, creds, http.MethodGet, "/boards/"+boardID, params)
	if err != nil {
		return domain.Board{}, err
	}

	var board domain.Board
	if err := decodeObject("/boards/"+boardID, body, &board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (c *Client) CreateBoard(ctx context.Context, creds domain.Credentials, name, description string) (domain.Board, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("desc", description)

	body, err := c.request(ctx, creds, http.MethodPost, "/boards", params)
	if err != nil {
		return domain.Board{}, err
	}

	var board domain.Board
	if err := decodeObject("/boards", body, &board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (c *Client) UpdateBoard(ctx context.Context, creds domain.Credentials, boardID string, fields map[string]string) (domain.Board, error) {
	params := url.Values{}
	for key, value := range fields {
		params.Set(key, value)
	}

	body, err := c.request(ctx, creds, http.MethodPut, "/boards/"+boardID, params)
	if err != nil {
		return domain.Board{}, err
	}

	var board domain.Board
	if err := decodeObject("/boards/"+boardID, body, &board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (c *Client) ArchiveBoard(ctx context.Context, creds domain.Credentials, boardID string) (domain.Board, error) {
	params := url.Values{}
	params.Set("value", "true")

	body, err := c.request(ctx, creds, http.MethodPut, "/boards/"+boardID+"/closed", params)
	if err != nil {
		return domain.Board{}, err
	}

	var board domain.Board
	if err := decodeObject("/boards/"+boardID+"/closed", body, &board); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}
