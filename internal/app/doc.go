// Package app contains the tag cloud pipeline driver. It defines the App
// struct, its configuration, and the run lifecycle that wires tokenizer,
// aggregator, selector and renderer together, decoupled from the CLI that
// obtains the run settings.
package app
