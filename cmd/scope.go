package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	scopeadapter "github.com/potatoworkshop/trellobot/internal/adapters/render/scope"
	"github.com/potatoworkshop/trellobot/internal/domain"
)

func newScopeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scope",
		Short: "Show the session's current board, list, card and done list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			conversation := sessionKey(cmd)

			sc, err := app.service.SessionContext(ctx, conversation)
			if err != nil {
				return err
			}

			rendered, err := app.scopeRenderer(conversation, sc, scopeadapter.RenderOptions{
				Backend: app.backend,
				Names:   app.scopeNames(ctx, sc),
			})
			if err != nil {
				return fmt.Errorf("render scope: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

// scopeNames looks up display names for the selected IDs. Best effort:
// the scope view works without credentials and without the remote API.
func (a *app) scopeNames(ctx context.Context, sc domain.SessionContext) map[domain.SessionField]string {
	creds, err := a.credentials(ctx)
	if err != nil {
		return nil
	}

	names := map[domain.SessionField]string{}
	if sc.BoardID != "" {
		if board, err := a.gateway.GetBoard(ctx, creds, sc.BoardID); err == nil {
			names[domain.SessionFieldBoard] = board.Name
		}
	}
	if sc.ListID != "" {
		if list, err := a.gateway.GetList(ctx, creds, sc.ListID); err == nil {
			names[domain.SessionFieldList] = list.Name
		}
	}
	if sc.CardID != "" {
		if card, err := a.gateway.GetCard(ctx, creds, sc.CardID); err == nil {
			names[domain.SessionFieldCard] = card.Name
		}
	}
	if sc.DoneListID != "" {
		if list, err := a.gateway.GetList(ctx, creds, sc.DoneListID); err == nil {
			names[domain.SessionFieldDoneList] = list.Name
		}
	}
	return names
}
