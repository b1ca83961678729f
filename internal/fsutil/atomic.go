// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
)

// maxTempAttempts bounds the search for an unused temporary file name.
const maxTempAttempts = 10000

// WriteFileAtomic creates or replaces the file at path with whatever write
// produces. The content is written to a temporary file in the same directory
// and renamed into place only when write and every file operation succeed,
// so path is never left holding partial content.
//
// A replaced file keeps its permission bits. A new file is created with perm
// as modified by the process umask.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	if write == nil {
		panic("write callback must not be nil")
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	keepMode, err := existingMode(path)
	if err != nil {
		return err
	}

	tmp, err := createTemp(dir, base, perm)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if keepMode != nil {
		if err = tmp.Chmod(*keepMode); err != nil {
			return fmt.Errorf("failed to set permissions on %s: %w", path, err)
		}
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move output into place at %s: %w", path, err)
	}
	return nil
}

// existingMode returns the permission bits of the regular file at path, or
// nil when nothing exists there yet.
func existingMode(path string) (*os.FileMode, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to inspect output file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("output path %s is not a regular file", path)
	}
	mode := info.Mode().Perm()
	return &mode, nil
}

// createTemp creates a new file next to base in dir. Unlike os.CreateTemp it
// passes perm to the open call so the umask applies.
func createTemp(dir, base string, perm os.FileMode) (*os.File, error) {
	for i := 0; i < maxTempAttempts; i++ {
		name := filepath.Join(dir, "."+base+".tmp-"+strconv.FormatUint(rand.Uint64(), 36))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("no unused temporary name in %s", dir)
}
