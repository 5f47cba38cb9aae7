package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trellobot",
		Short:         "Conversational Trello control from the terminal",
		Long:          "trellobot drives Trello boards the way a chat bot would: commands accept IDs or names, remember the current board, list and card per session, and keep that context across invocations.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("session", "local", "conversation key the context is stored under")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newScopeCmd(app),
		newMCPCmd(app),
	)
	rootCmd.AddCommand(newBoardCmds(app)...)
	rootCmd.AddCommand(newListCmds(app)...)
	rootCmd.AddCommand(newCardCmds(app)...)
	rootCmd.AddCommand(newChecklistCmds(app)...)

	return rootCmd
}
