package store

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/gymdesk/internal/interfaces/cli/bootstrap"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Member file tools",
		Long:  `Inspect and rewrite the member file.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newCheckCommand(),
		newRewriteCommand(),
	)

	return cmd
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the member file and report unreadable records",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
}

func newRewriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite",
		Short: "Rewrite the member file in the current record layout",
		Long:  `Load the member file and save it again. Unreadable records are dropped unless strict loading is enabled.`,
		Args:  cobra.NoArgs,
		RunE:  runRewrite,
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runCheck(cmd *cobra.Command, args []string) error {
	app, err := bootstrap.Open(commandContext(cmd), configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result := app.LoadResult

	fmt.Fprintf(out, "Member file: %s\n", result.Source)
	fmt.Fprintf(out, "  Loaded:  %d\n", result.Loaded)
	fmt.Fprintf(out, "  Skipped: %d\n", len(result.Skipped))
	for _, s := range result.Skipped {
		fmt.Fprintf(out, "    line %d: %s\n", s.Line, s.Reason)
	}
	return nil
}

func runRewrite(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	app, err := bootstrap.Open(ctx, configPath)
	if err != nil {
		return err
	}

	result, err := app.Members.Save.Execute(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %s with %d members (%d records dropped).\n",
		app.Store.Path(), result.Saved, len(app.LoadResult.Skipped))
	return nil
}
