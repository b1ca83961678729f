package config

import "context"

// Settings holds the three values that drive a single run.
type Settings struct {
	InputPath  string
	OutputPath string
	NumWords   int
}

// Source obtains run settings.
type Source interface {
	Settings(ctx context.Context) (*Settings, error)
}

// Static is a Source that always returns a copy of the wrapped settings.
type Static Settings

// Settings implements Source.
func (s Static) Settings(context.Context) (*Settings, error) {
	settings := Settings(s)
	return &settings, nil
}
