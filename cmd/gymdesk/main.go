package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/gymdesk/internal/interfaces/cli/member"
	"github.com/orris-inc/gymdesk/internal/interfaces/cli/store"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
	"github.com/orris-inc/gymdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "gymdesk",
		Short:         "Gymdesk - gym membership desk",
		Long:          `Gymdesk keeps regular and premium gym members in a plain text file: registrations, attendance, plan upgrades, payments and removals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewValidationError(err.Error())
	})

	rootCmd.AddCommand(
		member.NewCommand(),
		store.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), "gymdesk", version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		os.Exit(errors.ExitCode(err))
	}
}

func describe(err error) string {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return err.Error()
	}
	if appErr.Details != "" {
		return appErr.Message + ": " + appErr.Details
	}
	return appErr.Message
}
