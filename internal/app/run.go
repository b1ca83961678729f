package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/tagcloud/internal/config"
	"github.com/vk/tagcloud/internal/ctxlog"
	"github.com/vk/tagcloud/internal/fsutil"
	"github.com/vk/tagcloud/internal/ranking"
	"github.com/vk/tagcloud/internal/render"
	"github.com/vk/tagcloud/internal/wordcount"
)

// outputPerm is the permission of generated HTML files.
const outputPerm = 0644

// Run obtains settings from source and generates the tag cloud they describe.
func (a *App) Run(ctx context.Context, source config.Source) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	settings, err := source.Settings(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain run settings: %w", err)
	}

	if err := a.Generate(ctx, settings); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Generate counts the words of the input file and writes the tag cloud of the
// most frequent ones to the output file. The output file is only touched once
// every validation has passed and is replaced atomically.
func (a *App) Generate(ctx context.Context, settings *config.Settings) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger.With("input", settings.InputPath, "output", settings.OutputPath, "words", settings.NumWords)

	if settings.NumWords <= 0 {
		return fmt.Errorf("%w: got %d", ranking.ErrInvalidWordCount, settings.NumWords)
	}

	table, err := a.countFile(ctx, settings.InputPath)
	if err != nil {
		return err
	}
	logger.Info("Input file counted.", "distinct_words", table.Len())

	sel, err := ranking.Select(table, settings.NumWords)
	if err != nil {
		return err
	}
	logger.Debug("Words selected.", "max_count", sel.MaxCount, "min_count", sel.MinCount)

	err = fsutil.WriteFileAtomic(settings.OutputPath, outputPerm, func(w io.Writer) error {
		return render.Render(w, settings.InputPath, sel)
	})
	if err != nil {
		return err
	}

	logger.Info("Tag cloud written.")
	return nil
}

func (a *App) countFile(ctx context.Context, path string) (wordcount.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	table, err := wordcount.Count(ctx, file, a.separators)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return table, nil
}
