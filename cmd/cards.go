package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func newCardCmds(app *app) []*cobra.Command {
	return []*cobra.Command{
		newCardsCmd(app),
		newAddCmd(app),
		newCardCmd(app),
		newEditCmd(app),
		newMoveCmd(app),
		newDoneCmd(app),
		newArchiveCmd(app),
		newDeleteCmd(app),
		newCommentCmd(app),
		newFindCmd(app),
		newUseCardCmd(app),
	}
}

func newCardsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cards [list]",
		Short: "List open cards on a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Read(ctx, conversation, creds, domain.ResourceCard, domain.ActionList, refArg(args), domain.ParentScope{}, false)
			})
		},
	}
}

func newAddCmd(app *app) *cobra.Command {
	var list string
	var desc string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a card to a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				fields := map[string]string{"name": refArg(args)}
				if desc != "" {
					fields["desc"] = desc
				}
				return app.service.Write(ctx, conversation, creds, domain.ResourceCard, domain.ActionCreate, "",
					parentScope(domain.ResourceList, list), fields, false, true)
			})
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list to add the card to (default: session list)")
	cmd.Flags().StringVar(&desc, "desc", "", "card description")

	return cmd
}

func newCardCmd(app *app) *cobra.Command {
	var list string
	var sync bool

	cmd := &cobra.Command{
		Use:   "card [card]",
		Short: "Show card details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Read(ctx, conversation, creds, domain.ResourceCard, domain.ActionGet, refArg(args),
					parentScope(domain.ResourceList, list), sync)
			})
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list the card lives on (default: session scope)")
	cmd.Flags().BoolVar(&sync, "sync", false, "also make this the session's current card")

	return cmd
}

func newEditCmd(app *app) *cobra.Command {
	var name, desc, due, list string

	cmd := &cobra.Command{
		Use:   "edit [card]",
		Short: "Edit card fields",
		Long:  "Edit a card's name, description, due date or list. Pass --due none to clear the due date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				fields := map[string]string{}
				if name != "" {
					fields["name"] = name
				}
				if desc != "" {
					fields["desc"] = desc
				}
				if due != "" {
					fields["due"] = due
				}
				if list != "" {
					fields["list"] = list
				}
				return app.service.Write(ctx, conversation, creds, domain.ResourceCard, domain.ActionUpdate, refArg(args),
					domain.ParentScope{}, fields, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new card name")
	cmd.Flags().StringVar(&desc, "desc", "", "new card description")
	cmd.Flags().StringVar(&due, "due", "", "due date (RFC 3339, or none/null/clear to remove)")
	cmd.Flags().StringVar(&list, "list", "", "move the card to this list")

	return cmd
}

func newMoveCmd(app *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "move [card]",
		Short: "Move a card to another list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceCard, domain.ActionMove, refArg(args),
					domain.ParentScope{}, map[string]string{"list": to}, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "destination list")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newDoneCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done [card]",
		Short: "Move a card to the session's done list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceCard, domain.ActionDone, refArg(args),
					domain.ParentScope{}, nil, false, false)
			})
		},
	}
}

func newArchiveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "archive [card]",
		Short: "Archive (close) a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceCard, domain.ActionArchive, refArg(args),
					domain.ParentScope{}, nil, false, false)
			})
		},
	}
}

func newDeleteCmd(app *app) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "delete [card]",
		Short: "Delete a card permanently",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceCard, domain.ActionDelete, refArg(args),
					domain.ParentScope{}, nil, confirm, false)
			})
		},
	}
	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm the permanent deletion")

	return cmd
}

func newCommentCmd(app *app) *cobra.Command {
	var card string

	cmd := &cobra.Command{
		Use:   "comment <text>",
		Short: "Comment on a card",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceCard, domain.ActionComment, card,
					domain.ParentScope{}, map[string]string{"text": refArg(args)}, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&card, "card", "", "card to comment on (default: session card)")

	return cmd
}

func newFindCmd(app *app) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "find <keyword>",
		Short: "Search cards on a board by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Read(ctx, conversation, creds, domain.ResourceCard, domain.ActionSearch, refArg(args),
					parentScope(domain.ResourceBoard, board), false)
			})
		},
	}
	cmd.Flags().StringVar(&board, "board", "", "board to search (default: session board)")

	return cmd
}

func newUseCardCmd(app *app) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "use-card <card>",
		Short: "Set the session's current card",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Select(ctx, conversation, creds, domain.ResourceCard, refArg(args),
					parentScope(domain.ResourceList, list))
			})
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "list the card lives on (default: session scope)")

	return cmd
}
