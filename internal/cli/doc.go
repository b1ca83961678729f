// Package cli is responsible for parsing command-line arguments, prompting
// for run settings, and handling process-level concerns like exit codes.
package cli
