// Package mcp exposes the conversational Trello surface as MCP tools
// over stdio, so an agent can drive boards the same way the chat
// commands do. User-level failures (bad references, missing context,
// remote errors) come back as tool result text, not protocol errors.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/potatoworkshop/trellobot/internal/application"
	"github.com/potatoworkshop/trellobot/internal/domain"
)

// Server wraps the MCP server around the application service. All tools
// share one conversation key, so selections made through one tool are
// visible to the next call.
type Server struct {
	svc          *application.Service
	creds        domain.Credentials
	conversation string
	server       *mcp.Server
}

func NewServer(svc *application.Service, creds domain.Credentials, conversation, version string) *Server {
	s := &Server{
		svc:          svc,
		creds:        creds,
		conversation: conversation,
	}

	impl := &mcp.Implementation{
		Name:    "trellobot",
		Version: version,
	}

	s.server = mcp.NewServer(impl, nil)
	s.registerTools()

	return s
}

// Run serves the tools on stdio until the context ends.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "trello_select",
		Description: "Set the session's current board, list, card or checklist. Accepts a Trello ID or a " +
			"name; names match case-insensitively, exact before substring, within the current scope. " +
			"Selections persist across calls: select a board once, then lists and cards resolve inside it. " +
			"Pass done=true with resource=list to set the list that 'done' moves cards to.",
	}, s.handleSelect)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "trello_read",
		Description: "Read Trello data: action 'list' enumerates (boards, lists on a board, cards on a " +
			"list, checklists on a card), 'get' shows one resource in detail, 'search' finds cards on the " +
			"current board by keyword (ref is the keyword). Pass sync=true to also make the resolved " +
			"resource the session's current one. Archived items never appear in listings.",
	}, s.handleRead)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "trello_write",
		Description: "Mutate Trello: create, update, rename, move, done, archive, delete, comment, " +
			"set_state. References resolve like trello_read. Required fields per action: create needs " +
			"name; comment needs text; move needs list; set_state needs state=complete|incomplete; update " +
			"needs at least one changed field (due accepts none/null/clear to remove the date). delete " +
			"actions are destructive and require confirm=true.",
	}, s.handleWrite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "trello_scope",
		Description: "Show the session's current board, list, card and done-list selection.",
	}, s.handleScope)
}

// ToolResult is the structured payload every tool returns. Exactly one
// of Text or Error is set.
type ToolResult struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

func okResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, ToolResult{Text: text}, nil
}

func failResult(err error) (*mcp.CallToolResult, any, error) {
	text := application.UserMessage(err)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, ToolResult{Error: text}, nil
}

type SelectArgs struct {
	Resource       string `json:"resource" jsonschema:"What to select: board, list, card or checklist"`
	Ref            string `json:"ref,omitempty" jsonschema:"Trello ID or name; empty reuses the session default"`
	ParentResource string `json:"parent_resource,omitempty" jsonschema:"Resource kind scoping the lookup (e.g. board when selecting a list)"`
	ParentRef      string `json:"parent_ref,omitempty" jsonschema:"ID or name of the scoping parent"`
	Done           bool   `json:"done,omitempty" jsonschema:"With resource=list, set the done list instead of the current list"`
}

func (s *Server) handleSelect(ctx context.Context, req *mcp.CallToolRequest, args SelectArgs) (*mcp.CallToolResult, any, error) {
	resource, parent, err := parseTarget(args.Resource, args.ParentResource, args.ParentRef)
	if err != nil {
		return failResult(err)
	}

	if args.Done {
		if resource != domain.ResourceList {
			return failResult(&domain.ValidationError{Msg: "done selection only applies to lists"})
		}
		out, err := s.svc.SelectDoneList(ctx, s.conversation, s.creds, args.Ref, parent)
		if err != nil {
			return failResult(err)
		}
		return okResult(out)
	}

	out, err := s.svc.Select(ctx, s.conversation, s.creds, resource, args.Ref, parent)
	if err != nil {
		return failResult(err)
	}
	return okResult(out)
}

type ReadArgs struct {
	Resource       string `json:"resource" jsonschema:"What to read: board, list, card or checklist"`
	Action         string `json:"action" jsonschema:"list, get or search (search is cards only; ref is the keyword)"`
	Ref            string `json:"ref,omitempty" jsonschema:"Trello ID, name or search keyword; empty reuses the session default"`
	ParentResource string `json:"parent_resource,omitempty" jsonschema:"Resource kind scoping the lookup"`
	ParentRef      string `json:"parent_ref,omitempty" jsonschema:"ID or name of the scoping parent"`
	Sync           bool   `json:"sync,omitempty" jsonschema:"Also make the resolved resource the session's current one"`
}

func (s *Server) handleRead(ctx context.Context, req *mcp.CallToolRequest, args ReadArgs) (*mcp.CallToolResult, any, error) {
	resource, parent, err := parseTarget(args.Resource, args.ParentResource, args.ParentRef)
	if err != nil {
		return failResult(err)
	}

	out, err := s.svc.Read(ctx, s.conversation, s.creds, resource, domain.Action(args.Action), args.Ref, parent, args.Sync)
	if err != nil {
		return failResult(err)
	}
	return okResult(out)
}

type WriteArgs struct {
	Resource       string            `json:"resource" jsonschema:"What to mutate: board, list, card, checklist or check_item"`
	Action         string            `json:"action" jsonschema:"create, update, rename, move, done, archive, delete, comment or set_state"`
	Ref            string            `json:"ref,omitempty" jsonschema:"Trello ID or name of the target; empty reuses the session default (unused for create)"`
	ParentResource string            `json:"parent_resource,omitempty" jsonschema:"Resource kind scoping the target (check items always need parent_resource=checklist)"`
	ParentRef      string            `json:"parent_ref,omitempty" jsonschema:"ID or name of the scoping parent"`
	Fields         map[string]string `json:"fields,omitempty" jsonschema:"Action fields: name, desc, due, list, text, state"`
	Confirm        bool              `json:"confirm,omitempty" jsonschema:"Must be true for delete actions"`
	Sync           bool              `json:"sync,omitempty" jsonschema:"Propagate the written resource into the session context"`
}

func (s *Server) handleWrite(ctx context.Context, req *mcp.CallToolRequest, args WriteArgs) (*mcp.CallToolResult, any, error) {
	resource, parent, err := parseTarget(args.Resource, args.ParentResource, args.ParentRef)
	if err != nil {
		return failResult(err)
	}

	out, err := s.svc.Write(ctx, s.conversation, s.creds, resource, domain.Action(args.Action), args.Ref, parent, args.Fields, args.Confirm, args.Sync)
	if err != nil {
		return failResult(err)
	}
	return okResult(out)
}

type ScopeArgs struct{}

func (s *Server) handleScope(ctx context.Context, req *mcp.CallToolRequest, args ScopeArgs) (*mcp.CallToolResult, any, error) {
	sc, err := s.svc.SessionContext(ctx, s.conversation)
	if err != nil {
		return nil, nil, fmt.Errorf("read session context: %w", err)
	}
	return okResult(application.RenderSessionContext(s.conversation, sc))
}

func parseTarget(resource, parentResource, parentRef string) (domain.Resource, domain.ParentScope, error) {
	kind, err := domain.ParseResource(resource)
	if err != nil {
		return "", domain.ParentScope{}, &domain.ValidationError{Msg: err.Error()}
	}

	parent, err := domain.ParseParentScope(parentResource, parentRef)
	if err != nil {
		return "", domain.ParentScope{}, &domain.ValidationError{Msg: err.Error()}
	}

	return kind, parent, nil
}
