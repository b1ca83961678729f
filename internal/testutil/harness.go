// Package testutil provides a harness that runs the whole tag cloud pipeline
// against files in a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/tagcloud/internal/app"
	"github.com/vk/tagcloud/internal/config"
)

// HarnessResult holds the outcomes of a pipeline run.
type HarnessResult struct {
	LogOutput  string
	Err        error
	InputPath  string
	OutputPath string
	// Output is the content of the output file, empty if none was written.
	Output string
	// OutputExists reports whether the output file exists after the run.
	OutputExists bool
}

// Run writes files (relative name to content) into a fresh temporary
// directory and runs the pipeline with input, output and numWords resolved
// against it.
func Run(t *testing.T, files map[string]string, input, output string, numWords int) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	settings := config.Static{
		InputPath:  filepath.Join(tmpDir, input),
		OutputPath: filepath.Join(tmpDir, output),
		NumWords:   numWords,
	}

	logBuffer := &bytes.Buffer{}
	cfg, err := app.NewConfig(app.Config{LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)

	runErr := app.NewApp(logBuffer, cfg).Run(context.Background(), settings)

	if os.Getenv("TAGCLOUD_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result := &HarnessResult{
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		InputPath:  settings.InputPath,
		OutputPath: settings.OutputPath,
	}
	content, err := os.ReadFile(settings.OutputPath)
	switch {
	case err == nil:
		result.Output = string(content)
		result.OutputExists = true
	case !errors.Is(err, fs.ErrNotExist):
		require.NoError(t, err, "failed to inspect output file")
	}
	return result
}
