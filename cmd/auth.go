package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Trello credentials",
	}

	cmd.AddCommand(
		newAuthSetCmd(app),
		newAuthShowCmd(app),
		newAuthClearCmd(app),
	)

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var key string
	var token string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the Trello API key and token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if key == "" && token == "" {
				return fmt.Errorf("nothing to store: pass --key, --token or both")
			}

			ctx := cmd.Context()
			if key != "" {
				if err := app.secrets.Put(ctx, secretKeyAPIKey, key); err != nil {
					return fmt.Errorf("store api key: %w", err)
				}
			}
			if token != "" {
				if err := app.secrets.Put(ctx, secretKeyToken, token); err != nil {
					return fmt.Errorf("store token: %w", err)
				}
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Credentials stored.")
			return err
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "Trello API key")
	cmd.Flags().StringVar(&token, "token", "", "Trello API token")

	return cmd
}

func newAuthShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show whether credentials are configured",
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := app.credentials(cmd.Context())
			if err != nil {
				_, printErr := fmt.Fprintln(cmd.OutOrStdout(), "Credentials: not configured")
				return printErr
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Credentials: configured (key %s, token %s)\n",
				mask(creds.APIKey), mask(creds.Token))
			return err
		},
	}
}

func newAuthClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := app.secrets.Delete(ctx, secretKeyAPIKey); err != nil {
				return fmt.Errorf("delete api key: %w", err)
			}
			if err := app.secrets.Delete(ctx, secretKeyToken); err != nil {
				return fmt.Errorf("delete token: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Credentials cleared.")
			return err
		},
	}
}

func mask(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
