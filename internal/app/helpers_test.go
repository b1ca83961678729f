package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestApp creates an App that logs at debug level into a buffer. Set
// TAGCLOUD_TEST_LOGS=true to dump the logs of every test.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	logBuffer := &bytes.Buffer{}
	cfg, err := NewConfig(Config{LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)
	testApp := NewApp(logBuffer, cfg)

	t.Cleanup(func() {
		if os.Getenv("TAGCLOUD_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}

// writeInput writes content into a fresh temp directory and returns the
// directory and the input file path.
func writeInput(t *testing.T, content string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up input file")
	return dir, path
}
