// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fstime reads and writes file timestamps. Creation times are
// platform-variant: some systems expose a birth time, fewer allow setting
// one, and some do neither, so both directions sit behind a small interface
// with best-effort fallbacks.
package fstime

import (
	"errors"
	"os"
	"time"
)

// ErrCreationUnsupported reports that the platform cannot set a file's
// creation time. Callers treat it as a warning, not a failure; the
// modification time has already been applied when it is returned.
var ErrCreationUnsupported = errors.New("setting file creation time is not supported on this platform")

// Accessor reads and writes the timestamps of a file.
type Accessor interface {
	// Times returns the creation and modification times of the file at
	// path. On filesystems without a birth time the creation time falls
	// back to the modification time.
	Times(path string) (created, modified time.Time, err error)

	// SetTimes applies the given times to the file at path. The
	// modification time is always set; the creation time is set where the
	// platform allows it and ErrCreationUnsupported is returned where it
	// does not. A zero created time means "leave the creation time alone".
	SetTimes(path string, created, modified time.Time) error
}

// OS is the Accessor backed by the real filesystem.
type OS struct{}

func (OS) Times(path string) (time.Time, time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	modified := fi.ModTime()
	created, ok := birthTime(fi, path)
	if !ok {
		created = modified
	}
	return created, modified, nil
}

func (OS) SetTimes(path string, created, modified time.Time) error {
	if !modified.IsZero() {
		if err := os.Chtimes(path, modified, modified); err != nil {
			return err
		}
	}
	if created.IsZero() {
		return nil
	}
	return setBirthTime(path, created)
}
