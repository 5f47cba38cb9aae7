package trello

import (
	"context"
	"net/http"
	"net/url"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func (c *Client) ListChecklists(ctx context.Context, creds domain.Credentials, cardID string) ([]domain.Checklist, error) {
	endpoint := "/cards/" + cardID + "/checklists"
	body, err := c.request(ctx, creds, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var checklists []domain.Checklist
	if err := decodeList(endpoint, body, &checklists); err != nil {
		return nil, err
	}
	return checklists, nil
}

func (c *Client) GetChecklist(ctx context.Context, creds domain.Credentials, checklistID string) (domain.Checklist, error) {
	body, err := c.request(ctx, creds, http.MethodGet, "/checklists/"+checklistID, nil)
	if err != nil {
		return domain.Checklist{}, err
	}

	var checklist domain.Checklist
	if err := decodeObject("/checklists/"+checklistID, body, &checklist); err != nil {
		return domain.Checklist{}, err
	}
	return checklist, nil
}

func (c *Client) CreateChecklist(ctx context.Context, creds domain.Credentials, cardID, name string) (domain.Checklist, error) {
	params := url.Values{}
	params.Set("idCard", cardID)
	params.Set("name", name)

	body, err := c.request(ctx, creds, http.MethodPost, "/checklists", params)
	if err != nil {
		return domain.Checklist{}, err
	}

	var checklist domain.Checklist
	if err := decodeObject("/checklists", body, &checklist); err != nil {
		return domain.Checklist{}, err
	}
	return checklist, nil
}

func (c *Client) UpdateChecklist(ctx context.Context, creds domain.Credentials, checklistID string, fields map[string]string) (domain.Checklist, error) {
	params := url.Values{}
	for key, value := range fields {
		params.Set(key, value)
	}

	body, err := c.request(ctx, creds, http.MethodPut, "/checklists/"+checklistID, params)
	if err != nil {
		return domain.Checklist{}, err
	}

	var checklist domain.Checklist
	if err := decodeObject("/checklists/"+checklistID, body, &checklist); err != nil {
		return domain.Checklist{}, err
	}
	return checklist, nil
}

func (c *Client) DeleteChecklist(ctx context.Context, creds domain.Credentials, checklistID string) error {
	_, err := c.request(ctx, creds, http.MethodDelete, "/checklists/"+checklistID, nil)
	return err
}

func (c *Client) AddCheckItem(ctx context.Context, creds domain.Credentials, checklistID, name string) (domain.CheckItem, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("pos", "bottom")

	endpoint := "/checklists/" + checklistID + "/checkItems"
	body, err := c.request(ctx, creds, http.MethodPost, endpoint, params)
	if err != nil {
		return domain.CheckItem{}, err
	}

	var item domain.CheckItem
	if err := decodeObject(endpoint, body, &item); err != nil {
		return domain.CheckItem{}, err
	}
	return item, nil
}

func (c *Client) UpdateCheckItem(ctx context.Context, creds domain.Credentials, cardID, checkItemID string, fields map[string]string) (domain.CheckItem, error) {
	params := url.Values{}
	for key, value := range fields {
		params.Set(key, value)
	}

	endpoint := "/cards/" + cardID + "/checkItem/" + checkItemID
	body, err := c.request(ctx, creds, http.MethodPut, endpoint, params)
	if err != nil {
		return domain.CheckItem{}, err
	}

	var item domain.CheckItem
	if err := decodeObject(endpoint, body, &item); err != nil {
		return domain.CheckItem{}, err
	}
	return item, nil
}

func (c *Client) SetCheckItemState(ctx context.Context, creds domain.Credentials, cardID, checkItemID string, checked bool) (domain.CheckItem, error) {
	state := domain.CheckItemStateIncomplete
	if checked {
		state = domain.CheckItemStateComplete
	}
	return c.UpdateCheckItem(ctx, creds, cardID, checkItemID, map[string]string{"state": state})
}

func (c *Client) DeleteCheckItem(ctx context.Context, creds domain.Credentials, checklistID, checkItemID string) error {
	_, err := c.request(ctx, creds, http.MethodDelete, "/checklists/"+checklistID+"/checkItems/"+checkItemID, nil)
	return err
}
