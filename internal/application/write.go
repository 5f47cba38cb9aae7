package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

// writeRule is one row of the mutation matrix: which fields a
// (resource, action) pair takes and whether it is destructive.
type writeRule struct {
	required   []string
	optional   []string
	atLeastOne []string
	confirm    bool
}

var writeRules = map[domain.Resource]map[domain.Action]writeRule{
	domain.ResourceBoard: {
		domain.ActionCreate:  {required: []string{"name"}, optional: []string{"desc"}},
		domain.ActionUpdate:  {atLeastOne: []string{"name", "desc"}},
		domain.ActionArchive: {},
	},
	domain.ResourceList: {
		domain.ActionCreate:  {required: []string{"name"}},
		domain.ActionRename:  {required: []string{"name"}},
		domain.ActionArchive: {},
	},
	domain.ResourceCard: {
		domain.ActionCreate:  {required: []string{"name"}, optional: []string{"desc"}},
		domain.ActionUpdate:  {atLeastOne: []string{"name", "desc", "due", "list"}},
		domain.ActionMove:    {required: []string{"list"}},
		domain.ActionDone:    {},
		domain.ActionArchive: {},
		domain.ActionDelete:  {confirm: true},
		domain.ActionComment: {required: []string{"text"}},
	},
	domain.ResourceChecklist: {
		domain.ActionCreate: {required: []string{"name"}},
		domain.ActionUpdate: {required: []string{"name"}},
		domain.ActionDelete: {confirm: true},
	},
	domain.ResourceCheckItem: {
		domain.ActionCreate:   {required: []string{"name"}},
		domain.ActionUpdate:   {required: []string{"name"}},
		domain.ActionSetState: {required: []string{"state"}},
		domain.ActionDelete:   {confirm: true},
	},
}

// Write validates a mutation against the matrix, resolves the target,
// performs the remote call and renders the confirmation line. Validation
// failures happen before any network call.
func (s *Service) Write(ctx context.Context, conversation string, creds domain.Credentials, resource domain.Resource, action domain.Action, ref string, parent domain.ParentScope, fields map[string]string, confirm, sync bool) (string, error) {
	rule, err := lookupWriteRule(resource, action)
	if err != nil {
		return "", err
	}
	if err := validateFields(resource, action, rule, fields); err != nil {
		return "", err
	}
	if rule.confirm && !confirm {
		return "", &domain.ValidationError{Msg: fmt.Sprintf("%s %s is destructive, pass confirm=true", resource, action)}
	}

	switch resource {
	case domain.ResourceBoard:
		return s.writeBoard(ctx, conversation, creds, action, ref, fields, sync)
	case domain.ResourceList:
		return s.writeList(ctx, conversation, creds, action, ref, parent, fields, sync)
	case domain.ResourceCard:
		return s.writeCard(ctx, conversation, creds, action, ref, parent, fields, sync)
	case domain.ResourceChecklist:
		return s.writeChecklist(ctx, conversation, creds, action, ref, parent, fields)
	case domain.ResourceCheckItem:
		return s.writeCheckItem(ctx, conversation, creds, action, ref, parent, fields)
	}
	return "", &domain.ValidationError{Msg: fmt.Sprintf("unknown resource %q", resource)}
}

func lookupWriteRule(resource domain.Resource, action domain.Action) (writeRule, error) {
	actions, ok := writeRules[resource]
	if !ok {
		return writeRule{}, &domain.ValidationError{Msg: fmt.Sprintf("unknown resource %q", resource)}
	}
	rule, ok := actions[action]
	if !ok {
		return writeRule{}, &domain.ValidationError{Msg: fmt.Sprintf("cannot %s a %s", action, resource)}
	}
	return rule, nil
}

func validateFields(resource domain.Resource, action domain.Action, rule writeRule, fields map[string]string) error {
	allowed := make(map[string]bool, len(rule.required)+len(rule.optional)+len(rule.atLeastOne))
	for _, name := range rule.required {
		allowed[name] = true
	}
	for _, name := range rule.optional {
		allowed[name] = true
	}
	for _, name := range rule.atLeastOne {
		allowed[name] = true
	}

	var unknown []string
	for name := range fields {
		if !allowed[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &domain.ValidationError{Msg: fmt.Sprintf("%s %s does not take: %s", resource, action, strings.Join(unknown, ", "))}
	}

	for _, name := range rule.required {
		if fields[name] == "" {
			return &domain.ValidationError{Msg: fmt.Sprintf("%s %s needs a %s", resource, action, name)}
		}
	}
	if len(rule.atLeastOne) > 0 {
		any := false
		for _, name := range rule.atLeastOne {
			if fields[name] != "" {
				any = true
				break
			}
		}
		if !any {
			return &domain.ValidationError{Msg: fmt.Sprintf("%s %s needs at least one of: %s", resource, action, strings.Join(rule.atLeastOne, ", "))}
		}
	}

	if state, ok := fields["state"]; ok && state != domain.CheckItemStateComplete && state != domain.CheckItemStateIncomplete {
		return &domain.ValidationError{Msg: fmt.Sprintf("state must be %s or %s", domain.CheckItemStateComplete, domain.CheckItemStateIncomplete)}
	}
	return nil
}

func (s *Service) writeBoard(ctx context.Context, conversation string, creds domain.Credentials, action domain.Action, ref string, fields map[string]string, sync bool) (string, error) {
	switch action {
	case domain.ActionCreate:
		board, err := s.gateway.CreateBoard(ctx, creds, fields["name"], fields["desc"])
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncBoardSelected(ctx, conversation, board.ID); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("Created board: %s (%s)\n%s", board.Name, board.ID, board.URL), nil

	case domain.ActionUpdate:
		resolution, err := s.ResolveBoard(ctx, conversation, creds, ref)
		if err != nil {
			return "", err
		}
		wire := map[string]string{}
		if name := fields["name"]; name != "" {
			wire["name"] = name
		}
		if desc := fields["desc"]; desc != "" {
			wire["desc"] = desc
		}
		board, err := s.gateway.UpdateBoard(ctx, creds, resolution.ID, wire)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Updated board: %s (%s)", board.Name, board.ID), nil

	case domain.ActionArchive:
		resolution, err := s.ResolveBoard(ctx, conversation, creds, ref)
		if err != nil {
			return "", err
		}
		board, err := s.gateway.ArchiveBoard(ctx, creds, resolution.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Archived board: %s (%s)", board.Name, board.ID), nil
	}
	return "", &domain.ValidationError{Msg: fmt.Sprintf("cannot %s a board", action)}
}

func (s *Service) writeList(ctx context.Context, conversation string, creds domain.Credentials, action domain.Action, ref string, parent domain.ParentScope, fields map[string]string, sync bool) (string, error) {
	switch action {
	case domain.ActionCreate:
		boardID, err := s.boardScope(ctx, conversation, creds, parent)
		if err != nil {
			return "", err
		}
		list, err := s.gateway.CreateList(ctx, creds, boardID, fields["name"])
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncListSelected(ctx, conversation, list.ID, list.BoardID); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("Created list: %s (%s)", list.Name, list.ID), nil

	case domain.ActionRename:
		resolution, err := s.ResolveList(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		list, err := s.gateway.RenameList(ctx, creds, resolution.ID, fields["name"])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Renamed list: %s (%s)", list.Name, list.ID), nil

	case domain.ActionArchive:
		resolution, err := s.ResolveList(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		list, err := s.gateway.ArchiveList(ctx, creds, resolution.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Archived list: %s (%s)", list.Name, list.ID), nil
	}
	return "", &domain.ValidationError{Msg: fmt.Sprintf("cannot %s a list", action)}
}

func (s *Service) writeCard(ctx context.Context, conversation string, creds domain.Credentials, action domain.Action, ref string, parent domain.ParentScope, fields map[string]string, sync bool) (string, error) {
	switch action {
	case domain.ActionCreate:
		listID, err := s.listScopeForCreate(ctx, conversation, creds, parent)
		if err != nil {
			return "", err
		}
		card, err := s.gateway.CreateCard(ctx, creds, listID, fields["name"], fields["desc"])
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncCard(ctx, conversation, card); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("Created card: %s (%s)\n%s", card.Name, card.ID, card.URL), nil

	case domain.ActionUpdate:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		wire, err := s.cardUpdateFields(ctx, conversation, creds, fields)
		if err != nil {
			return "", err
		}
		card, err := s.gateway.UpdateCard(ctx, creds, resolution.ID, wire)
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncCard(ctx, conversation, card); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("Updated card: %s (%s)\n%s", card.Name, card.ID, card.URL), nil

	case domain.ActionMove:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		target, err := s.ResolveList(ctx, conversation, creds, fields["list"], domain.ParentScope{})
		if err != nil {
			return "", err
		}
		card, err := s.gateway.UpdateCard(ctx, creds, resolution.ID, map[string]string{"idList": target.ID})
		if err != nil {
			return "", err
		}
		if sync {
			if err := s.syncCard(ctx, conversation, card); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("Moved card: %s -> %s\n%s", card.Name, target.ID, card.URL), nil

	case domain.ActionDone:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		doneListID, err := s.sessionValue(ctx, conversation, domain.SessionFieldDoneList)
		if err != nil {
			return "", err
		}
		if doneListID == "" {
			return "", &domain.MissingContextError{Resource: domain.ResourceList, Hint: "use-done"}
		}
		card, err := s.gateway.UpdateCard(ctx, creds, resolution.ID, map[string]string{"idList": doneListID})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Moved card to done: %s (%s)", card.Name, card.ID), nil

	case domain.ActionArchive:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		card, err := s.gateway.ArchiveCard(ctx, creds, resolution.ID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Archived card: %s (%s)", card.Name, card.ID), nil

	case domain.ActionDelete:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		if err := s.gateway.DeleteCard(ctx, creds, resolution.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted card: %s", resolution.ID), nil

	case domain.ActionComment:
		resolution, err := s.ResolveCard(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		comment, err := s.gateway.AddComment(ctx, creds, resolution.ID, fields["text"])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Comment added. action_id=%s card_id=%s", comment.ID, resolution.ID), nil
	}
	return "", &domain.ValidationError{Msg: fmt.Sprintf("cannot %s a card", action)}
}

func (s *Service) writeChecklist(ctx context.Context, conversation string, creds domain.Credentials, action domain.Action, ref string, parent domain.ParentScope, fields map[string]string) (string, error) {
	switch action {
	case domain.ActionCreate:
		cardID, err := s.cardScopeForChecklist(ctx, conversation, creds, parent)
		if err != nil {
			return "", err
		}
		checklist, err := s.gateway.CreateChecklist(ctx, creds, cardID, fields["name"])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created checklist: %s (%s)", checklist.Name, checklist.ID), nil

	case domain.ActionUpdate:
		resolution, err := s.ResolveChecklist(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		checklist, err := s.gateway.UpdateChecklist(ctx, creds, resolution.ID, map[string]string{"name": fields["name"]})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Renamed checklist: %s (%s)", checklist.Name, checklist.ID), nil

	case domain.ActionDelete:
		resolution, err := s.ResolveChecklist(ctx, conversation, creds, ref, parent)
		if err != nil {
			return "", err
		}
		if err := s.gateway.DeleteChecklist(ctx, creds, resolution.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted checklist: %s", resolution.ID), nil
	}
	return "", &domain.ValidationError{Msg: fmt.Sprintf("cannot %s a checklist", action)}
}

func (s *Service) writeCheckItem(ctx context.Context, conversation string, creds domain.Credentials, action domain.Action, ref string, parent domain.ParentScope, fields map[string]string) (string, error) {
	if action == domain.ActionCreate {
		if parent.IsZero() || parent.Kind != domain.ResourceChecklist {
			return "", &domain.ValidationError{Msg: "adding a check item needs its checklist (pass parent_resource=checklist)"}
		}
		checklistResolution, err := s.ResolveChecklist(ctx, conversation, creds, parent.Ref, domain.ParentScope{})
		if err != nil {
			return "", err
		}
		item, err := s.gateway.AddCheckItem(ctx, creds, checklistResolution.ID, fields["name"])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added checklist item: %s (%s)", item.Name, item.ID), nil
	}

	resolution, err := s.ResolveCheckItem(ctx, conversation, creds, ref, parent)
	if err != nil {
		return "", err
	}
	cardID := resolution.Checklist.CardID

	switch action {
	case domain.ActionUpdate:
		item, err := s.gateway.UpdateCheckItem(ctx, creds, cardID, resolution.ID, map[string]string{"name": fields["name"]})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Renamed checklist item: %s (%s)", item.Name, item.ID), nil

	case domain.ActionSetState:
		checked := fields["state"] == domain.CheckItemStateComplete
		if _, err := s.gateway.SetCheckItemState(ctx, creds, cardID, resolution.ID, checked); err != nil {
			return "", err
		}
		if checked {
			return fmt.Sprintf("Checklist item checked: %s", resolution.ID), nil
		}
		return fmt.Sprintf("Checklist item unchecked: %s", resolution.ID), nil

	case domain.ActionDelete:
		if err := s.gateway.DeleteCheckItem(ctx, creds, resolution.Checklist.ID, resolution.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted checklist item: %s", resolution.ID), nil
	}
	return "", &domain.ValidationError{Msg: fmt.Sprintf("cannot %s a check item", action)}
}

// cardUpdateFields turns the user-facing field names into wire fields.
// The due sentinels none/null/clear clear the date; a list value is a
// reference and resolves before the update call.
func (s *Service) cardUpdateFields(ctx context.Context, conversation string, creds domain.Credentials, fields map[string]string) (map[string]string, error) {
	wire := map[string]string{}
	if name := fields["name"]; name != "" {
		wire["name"] = name
	}
	if desc := fields["desc"]; desc != "" {
		wire["desc"] = desc
	}
	if due, ok := fields["due"]; ok && due != "" {
		switch strings.ToLower(due) {
		case "none", "null", "clear":
			wire["due"] = ""
		default:
			wire["due"] = due
		}
	}
	if listRef := fields["list"]; listRef != "" {
		target, err := s.ResolveList(ctx, conversation, creds, listRef, domain.ParentScope{})
		if err != nil {
			return nil, err
		}
		wire["idList"] = target.ID
	}
	return wire, nil
}

// listScopeForCreate picks the list a card is created on: explicit
// parent list first, then session.
func (s *Service) listScopeForCreate(ctx context.Context, conversation string, creds domain.Credentials, parent domain.ParentScope) (string, error) {
	if !parent.IsZero() {
		if parent.Kind != domain.ResourceList {
			return "", &domain.ValidationError{Msg: fmt.Sprintf("a card cannot be created on a %s", parent.Kind)}
		}
		resolution, err := s.ResolveList(ctx, conversation, creds, parent.Ref, domain.ParentScope{})
		if err != nil {
			return "", err
		}
		return resolution.ID, nil
	}

	listID, err := s.sessionValue(ctx, conversation, domain.SessionFieldList)
	if err != nil {
		return "", err
	}
	if listID == "" {
		return "", &domain.MissingContextError{Resource: domain.ResourceList}
	}
	return listID, nil
}
