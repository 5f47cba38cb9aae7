package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func newListCmds(app *app) []*cobra.Command {
	return []*cobra.Command{
		newListsCmd(app),
		newListCreateCmd(app),
		newListRenameCmd(app),
		newListArchiveCmd(app),
		newUseListCmd(app),
		newUseDoneCmd(app),
	}
}

func newListsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lists [board]",
		Short: "List open lists on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Read(ctx, conversation, creds, domain.ResourceList, domain.ActionList, refArg(args), domain.ParentScope{}, false)
			})
		},
	}
}

func newListCreateCmd(app *app) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "list-create <name>",
		Short: "Create a list on a board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceList, domain.ActionCreate, "",
					parentScope(domain.ResourceBoard, board), map[string]string{"name": refArg(args)}, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&board, "board", "", "board to create the list on (default: session board)")

	return cmd
}

func newListRenameCmd(app *app) *cobra.Command {
	var name string
	var board string

	cmd := &cobra.Command{
		Use:   "list-rename [list]",
		Short: "Rename a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceList, domain.ActionRename, refArg(args),
					parentScope(domain.ResourceBoard, board), map[string]string{"name": name}, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new list name")
	cmd.Flags().StringVar(&board, "board", "", "board the list lives on (default: session board)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newListArchiveCmd(app *app) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "list-archive [list]",
		Short: "Archive (close) a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceList, domain.ActionArchive, refArg(args),
					parentScope(domain.ResourceBoard, board), nil, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&board, "board", "", "board the list lives on (default: session board)")

	return cmd
}

func newUseListCmd(app *app) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "use-list <list>",
		Short: "Set the session's current list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Select(ctx, conversation, creds, domain.ResourceList, refArg(args),
					parentScope(domain.ResourceBoard, board))
			})
		},
	}
	cmd.Flags().StringVar(&board, "board", "", "board the list lives on (default: session board)")

	return cmd
}

func newUseDoneCmd(app *app) *cobra.Command {
	var board string

	cmd := &cobra.Command{
		Use:   "use-done <list>",
		Short: "Set the list that 'done' moves cards to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.SelectDoneList(ctx, conversation, creds, refArg(args),
					parentScope(domain.ResourceBoard, board))
			})
		},
	}
	cmd.Flags().StringVar(&board, "board", "", "board the list lives on (default: session board)")

	return cmd
}
