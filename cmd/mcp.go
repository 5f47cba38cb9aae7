package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/potatoworkshop/trellobot/internal/mcp"
	"github.com/potatoworkshop/trellobot/internal/version"
)

func newMCPCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the Trello tools over MCP on stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			creds, err := app.credentials(ctx)
			if err != nil {
				return err
			}

			server := mcpserver.NewServer(app.service, creds, sessionKey(cmd), version.Version)
			return server.Run(ctx)
		},
	}
}
