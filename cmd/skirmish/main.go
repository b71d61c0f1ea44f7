package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/skirmish/internal/app"
	"github.com/vk/skirmish/internal/cli"
)

// main is the entrypoint for the skirmish engine shell.
func main() {
	// Minimal logger until the app configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the real logic so tests can drive it with in-memory writers.
func run(outW, errW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	engineApp, err := app.NewApp(outW, errW, config)
	if err != nil {
		return err
	}
	defer engineApp.Close()

	return engineApp.Run(context.Background())
}
