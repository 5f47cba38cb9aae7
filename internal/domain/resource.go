package domain

import "fmt"

// Resource identifies the kind of remote object a reference points at.
type Resource string

const (
	ResourceBoard     Resource = "board"
	ResourceList      Resource = "list"
	ResourceCard      Resource = "card"
	ResourceChecklist Resource = "checklist"
	ResourceCheckItem Resource = "check_item"
)

// ParseResource validates a caller-supplied resource tag.
func ParseResource(s string) (Resource, error) {
	switch Resource(s) {
	case ResourceBoard, ResourceList, ResourceCard, ResourceChecklist, ResourceCheckItem:
		return Resource(s), nil
	}
	return "", fmt.Errorf("unknown resource %q (expected board, list, card, checklist or check_item)", s)
}

// Action is a mutation or query verb applied to a resource.
type Action string

const (
	ActionSelect   Action = "select"
	ActionList     Action = "list"
	ActionGet      Action = "get"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionRename   Action = "rename"
	ActionMove     Action = "move"
	ActionDone     Action = "done"
	ActionArchive  Action = "archive"
	ActionDelete   Action = "delete"
	ActionComment  Action = "comment"
	ActionSearch   Action = "search"
	ActionSetState Action = "set_state"
)

// ParentScope narrows a lookup to an explicitly named parent instead of
// the session defaults. The zero value means "no parent given".
type ParentScope struct {
	Kind Resource
	Ref  string
}

func (p ParentScope) IsZero() bool {
	return p.Kind == "" && p.Ref == ""
}

// ParseParentScope builds a scope from the untyped pair tool callers
// supply. Both empty yields the zero scope; a ref without a resource tag
// is an error rather than a guess.
func ParseParentScope(resource, ref string) (ParentScope, error) {
	if resource == "" && ref == "" {
		return ParentScope{}, nil
	}
	if resource == "" {
		return ParentScope{}, fmt.Errorf("parent reference %q given without a parent resource", ref)
	}
	kind, err := ParseResource(resource)
	if err != nil {
		return ParentScope{}, err
	}
	if kind == ResourceCheckItem {
		return ParentScope{}, fmt.Errorf("a check item cannot scope another resource")
	}
	return ParentScope{Kind: kind, Ref: ref}, nil
}

// ScopeIDs is the bag of concrete IDs a resolved parent contributes.
// Fields the parent does not determine stay empty.
type ScopeIDs struct {
	BoardID     string
	ListID      string
	CardID      string
	ChecklistID string
}
