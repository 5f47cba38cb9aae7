package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/potatoworkshop/trellobot/internal/domain"
)

func newBoardCmds(app *app) []*cobra.Command {
	return []*cobra.Command{
		newBoardsCmd(app),
		newBoardCreateCmd(app),
		newBoardInfoCmd(app),
		newBoardArchiveCmd(app),
		newUseBoardCmd(app),
	}
}

func newBoardsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List open boards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Read(ctx, conversation, creds, domain.ResourceBoard, domain.ActionList, "", domain.ParentScope{}, false)
			})
		},
	}
}

func newBoardCreateCmd(app *app) *cobra.Command {
	var desc string

	cmd := &cobra.Command{
		Use:   "board-create <name>",
		Short: "Create a board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				fields := map[string]string{"name": refArg(args)}
				if desc != "" {
					fields["desc"] = desc
				}
				return app.service.Write(ctx, conversation, creds, domain.ResourceBoard, domain.ActionCreate, "", domain.ParentScope{}, fields, false, false)
			})
		},
	}
	cmd.Flags().StringVar(&desc, "desc", "", "board description")

	return cmd
}

func newBoardInfoCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board-info [board]",
		Short: "Show board details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Read(ctx, conversation, creds, domain.ResourceBoard, domain.ActionGet, refArg(args), domain.ParentScope{}, false)
			})
		},
	}
}

func newBoardArchiveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board-archive [board]",
		Short: "Archive (close) a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Write(ctx, conversation, creds, domain.ResourceBoard, domain.ActionArchive, refArg(args), domain.ParentScope{}, nil, false, false)
			})
		},
	}
}

func newUseBoardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use-board <board>",
		Short: "Set the session's current board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, app, func(ctx context.Context, creds domain.Credentials, conversation string) (string, error) {
				return app.service.Select(ctx, conversation, creds, domain.ResourceBoard, refArg(args), domain.ParentScope{})
			})
		},
	}
}
