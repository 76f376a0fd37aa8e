package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/argreport/internal/report"
)

// shadowed are the subcommand names cobra routes to on its own: the shell
// completion requests and help. Each is registered as a hidden command that
// prints the report instead.
var shadowed = []string{
	cobra.ShellCompRequestCmd,
	cobra.ShellCompNoDescRequestCmd,
	"help",
}

// NewRootCommand creates the root command for the argreport CLI.
//
// argv is the full argument vector as the host passed it; argv[0] is the
// invocation name. The command sets its own args from argv[1:] and recognizes
// no flags or subcommands: every token, including "--help", "help" and
// "__complete", is a positional argument. The report is always built from argv
// itself, whichever command cobra routes to.
func NewRootCommand(argv []string) *cobra.Command {
	name := report.NullMarker
	if len(argv) > 0 {
		name = argv[0]
	}

	runReport := func(cmd *cobra.Command, _ []string) error {
		if err := report.Run(cmd.OutOrStdout(), argv); err != nil {
			return WrapExitError(ExitFailure, "stdout unavailable", err)
		}
		return nil
	}

	cmd := &cobra.Command{
		Use:                filepath.Base(name),
		Short:              "Print the invocation name and the first three arguments",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runReport,
	}

	// The report is the whole surface; no completion subcommand.
	cmd.CompletionOptions.DisableDefaultCmd = true

	for _, token := range shadowed {
		shadow := &cobra.Command{
			Use:                token,
			Hidden:             true,
			Args:               cobra.ArbitraryArgs,
			DisableFlagParsing: true,
			RunE:               runReport,
		}
		if token == "help" {
			cmd.SetHelpCommand(shadow)
		} else {
			cmd.AddCommand(shadow)
		}
	}

	// A non-nil slice keeps cobra from falling back to os.Args.
	args := []string{}
	if len(argv) > 1 {
		args = append(args, argv[1:]...)
	}
	cmd.SetArgs(args)

	return cmd
}
