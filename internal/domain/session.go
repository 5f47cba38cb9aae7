package domain

// SessionField names a single slot of per-conversation state in the
// session store. Keys are stable; they appear verbatim in the file and
// redis backends.
type SessionField string

const (
	SessionFieldBoard    SessionField = "board_id"
	SessionFieldList     SessionField = "list_id"
	SessionFieldCard     SessionField = "card_id"
	SessionFieldDoneList SessionField = "done_list_id"
)

// SessionContext is the per-conversation current selection. Empty string
// means unset. It is a value snapshot: the store owns the authoritative
// state and two reads may observe different snapshots.
type SessionContext struct {
	BoardID    string
	ListID     string
	CardID     string
	DoneListID string
}
