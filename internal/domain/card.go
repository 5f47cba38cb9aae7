package domain

// Card is a thin projection of a remote card. Due is the raw RFC 3339
// timestamp string from the API, empty when the card has no due date.
type Card struct {
	RawBody

	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"desc"`
	URL          string   `json:"url"`
	BoardID      string   `json:"idBoard"`
	ListID       string   `json:"idList"`
	Closed       bool     `json:"closed"`
	Due          string   `json:"due"`
	DueComplete  bool     `json:"dueComplete"`
	ChecklistIDs []string `json:"idChecklists"`
}

// CheckItemStateComplete and CheckItemStateIncomplete are the only states
// the remote API reports for a check item.
const (
	CheckItemStateComplete   = "complete"
	CheckItemStateIncomplete = "incomplete"
)

type Checklist struct {
	RawBody

	ID     string      `json:"id"`
	Name   string      `json:"name"`
	CardID string      `json:"idCard"`
	Items  []CheckItem `json:"checkItems"`
}

type CheckItem struct {
	RawBody

	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// CommentAction is the action object returned when a comment is added.
type CommentAction struct {
	RawBody

	ID string `json:"id"`
}
