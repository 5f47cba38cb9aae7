package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/potatoworkshop/trellobot/internal/application"
	"github.com/potatoworkshop/trellobot/internal/domain"
)

type textFunc func(ctx context.Context, creds domain.Credentials, conversation string) (string, error)

// emit runs one conversational operation and prints its text block.
// Domain errors flatten to the one-line user message here; they never
// reach the user as wrapped Go error chains.
func emit(cmd *cobra.Command, app *app, fn textFunc) error {
	ctx := cmd.Context()

	creds, err := app.credentials(ctx)
	if err != nil {
		return err
	}

	out, err := fn(ctx, creds, sessionKey(cmd))
	if err != nil {
		return errors.New(application.UserMessage(err))
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func sessionKey(cmd *cobra.Command) string {
	conversation, err := cmd.Flags().GetString("session")
	if err != nil || conversation == "" {
		return "local"
	}
	return conversation
}

// refArg joins positional args into one reference, so names with spaces
// work without quoting.
func refArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func parentScope(kind domain.Resource, ref string) domain.ParentScope {
	if ref == "" {
		return domain.ParentScope{}
	}
	return domain.ParentScope{Kind: kind, Ref: ref}
}
