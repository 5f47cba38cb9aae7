package domain

// Board is a thin projection of a remote board. JSON tags follow the wire
// names used by the Trello REST API.
type Board struct {
	RawBody

	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"desc"`
	URL          string `json:"url"`
	Closed       bool   `json:"closed"`
	LastActivity string `json:"dateLastActivity"`
}

// List is a column of cards within a board.
type List struct {
	RawBody

	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Closed   bool    `json:"closed"`
	BoardID  string  `json:"idBoard"`
	Position float64 `json:"pos"`
}
