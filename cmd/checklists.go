package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func newChecklistCmds(app *app) []*cobra.Command {
	return []*cobra.Command{
		newChecklistsCmd(app),
		newChecklistCreateCmd(app),
		newChecklistAddCmd(app),
		newChecklistCheckCmd(app),
		newChecklistUncheckCmd(app),
		newChecklistDeleteCmd(app),
	}
}

func newChecklistsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checklists [card]",
		Short: "List checklists on a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Read(ctx, conversation, creds, domain.ResourceChecklist, domain.ActionList, refArg(args), domain.ParentScope{}, false)
			})
		},
	}
}

func newChecklistCreateCmd(app *app) *cobra.Command {
	var card string

	cmd := &cobra.Command{
		Use:   "checklist-create <name>",
		Short: "Create a checklist on a card",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceChecklist, domain.ActionCreate, "",
					parentScope(domain.ResourceCard, card), map[string]string{"name": refArg(args)}, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&card, "card", "", "card to attach the checklist to (default: session card)")

	return cmd
}

func newChecklistAddCmd(app *app) *cobra.Command {
	var checklist string

	cmd := &cobra.Command{
		Use:   "checklist-add <item name>",
		Short: "Add an item to a checklist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceCheckItem, domain.ActionCreate, "",
					parentScope(domain.ResourceChecklist, checklist), map[string]string{"name": refArg(args)}, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&checklist, "checklist", "", "checklist to add the item to")
	_ = cmd.MarkFlagRequired("checklist")

	return cmd
}

func newChecklistCheckCmd(app *app) *cobra.Command {
	return newCheckItemStateCmd(app, "checklist-check", "Mark a checklist item complete", domain.CheckItemStateComplete)
}

func newChecklistUncheckCmd(app *app) *cobra.Command {
	return newCheckItemStateCmd(app, "checklist-uncheck", "Mark a checklist item incomplete", domain.CheckItemStateIncomplete)
}

func newCheckItemStateCmd(app *app, use, short, state string) *cobra.Command {
	var checklist string

	cmd := &cobra.Command{
		Use:   use + " <item>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceCheckItem, domain.ActionSetState, refArg(args),
					parentScope(domain.ResourceChecklist, checklist), map[string]string{"state": state}, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&checklist, "checklist", "", "checklist the item belongs to")
	_ = cmd.MarkFlagRequired("checklist")

	return cmd
}

func newChecklistDeleteCmd(app *app) *cobra.Command {
	var card string
	var confirm bool

	cmd := &cobra.Command{
		Use:   "checklist-delete <checklist>",
		Short: "Delete a checklist permanently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceChecklist, domain.ActionDelete, refArg(args),
					parentScope(domain.ResourceCard, card), nil, confirm, false)
			})
		},
	}
	cmd.Flags().StringVar(&card, "card", "", "card the checklist belongs to (default: session card)")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm the permanent deletion")

	return cmd
}
