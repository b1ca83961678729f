package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/tagcloud/internal/app"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, &app.Config{LogFormat: "text", LogLevel: "warn"}, cfg)
	require.Empty(t, out.String())
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-answers", "run.hcl", "-log-level", "DEBUG", "-log-format", "json"}, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, &app.Config{AnswersPath: "run.hcl", LogFormat: "json", LogLevel: "debug"}, cfg)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-answers")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "unknown flag", args: []string{"--nope"}, contains: "flag provided but not defined: -nope"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, contains: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "chatty"}, contains: "invalid log-level"},
		{name: "positional argument", args: []string{"input.txt"}, contains: "unexpected arguments: input.txt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Nil(t, cfg)
			require.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.contains)
		})
	}
}
