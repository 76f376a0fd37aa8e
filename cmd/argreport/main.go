package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/roach88/argreport/internal/cli"
)

// main is the entrypoint for argreport; it exits non-zero only when stdout
// cannot be written.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(os.Stdout, os.Args); err != nil {
		logger.Error("report failed", "error", err)
		os.Exit(cli.GetExitCode(err))
	}
}

// run reports argv to out. argv[0] is the invocation name.
func run(out io.Writer, argv []string) error {
	cmd := cli.NewRootCommand(argv)
	cmd.SetOut(out)
	return cmd.Execute()
}
