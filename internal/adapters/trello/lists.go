package trello

import (
	"context"
	"net/http"
	"net/url"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func (c *Client) ListLists(ctx context.Context, creds domain.Credentials, boardID string) ([]domain.List, error) {
	params := url.Values{}
	params.Set("fields", "id,name,closed,idBoard,pos")

	endpoint := "/boards/" + boardID + "/lists"
	body, err := c.request(ctx, creds, http.MethodGet, endpoint, params)
	if err != nil {
		return nil, err
	}

	var lists []domain.List
	if err := decodeList(endpoint, body, &lists); err != nil {
		return nil, err
	}

	open := lists[:0]
	for _, list := range lists {
		if !list.Closed {
			open = append(open, list)
		}
	}
	return open, nil
}

func (c *Client) GetList(ctx context.Context, creds domain.Credentials, listID string) (domain.List, error) {
	params := url.Values{}
	params.Set("fields", "id,name,closed,idBoard,pos")

	body, err := c.request(ctx, creds, http.MethodGet, "/lists/"+listID, params)
	if err != nil {
		return domain.List{}, err
	}

	var list domain.List
	if err := decodeObject("/lists/"+listID, body, &list); err != nil {
		return domain.List{}, err
	}
	return list, nil
}

func (c *Client) CreateList(ctx context.Context, creds domain.Credentials, boardID, name string) (domain.List, error) {
	params := url.Values{}
	params.Set("idBoard", boardID)
	params.Set("name", name)
	params.Set("pos", "bottom")

	body, err := c.request(ctx, creds, http.MethodPost, "/lists", params)
	if err != nil {
		return domain.List{}, err
	}

	var list domain.List
	if err := decodeObject("/lists", body, &list); err != nil {
		return domain.List{}, err
	}
	return list, nil
}

func (c *Client) RenameList(ctx context.Context, creds domain.Credentials, listID, name string) (domain.List, error) {
	params := url.Values{}
	params.Set("name", name)

	body, err := c.request(ctx, creds, http.MethodPut, "/lists/"+listID, params)
	if err != nil {
		return domain.List{}, err
	}

	var list domain.List
	if err := decodeObject("/lists/"+listID, body, &list); err != nil {
		return domain.List{}, err
	}
	return list, nil
}

func (c *Client) ArchiveList(ctx context.Context, creds domain.Credentials, listID string) (domain.List, error) {
	params := url.Values{}
	params.Set("value", "true")

	endpoint := "/lists/" + listID + "/closed"
	body, err := c.request(ctx, creds, http.MethodPut, endpoint, params)
	if err != nil {
		return domain.List{}, err
	}

	var list domain.List
	if err := decodeObject(endpoint, body, &list); err != nil {
		return domain.List{}, err
	}
	return list, nil
}
