package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalon/insights/internal/interfaces/cli/migrate"
	"github.com/katalon/insights/internal/interfaces/cli/server"
	"github.com/katalon/insights/internal/interfaces/cli/worker"
	"github.com/katalon/insights/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "insights",
		Short:        "Insights - chatbot analytics and support tickets",
		Long:         `Insights serves the chatbot conversation log, feedback review, analytics dashboard and support ticket API.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		worker.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, args []string) {
				if !version.IsRelease() {
					fmt.Fprintln(cmd.OutOrStdout(), version.Current(), "(development build)")
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), version.Current())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
