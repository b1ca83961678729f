package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/tagcloud/internal/app"
	"github.com/vk/tagcloud/internal/cli"
	"github.com/vk/tagcloud/internal/config"
	"github.com/vk/tagcloud/internal/hcl"
)

// main is the entrypoint for the tagcloud application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Prompts go to outW; logs go to errW.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	var source config.Source
	if appConfig.AnswersPath != "" {
		source = hcl.NewAnswersFile(appConfig.AnswersPath)
	} else {
		source = cli.NewPrompter(in, outW)
	}

	tagcloudApp := app.NewApp(errW, appConfig)
	if err := tagcloudApp.Run(context.Background(), source); err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}
