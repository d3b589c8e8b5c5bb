// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !linux && !darwin && !windows

package fstime

import (
	"io/fs"
	"time"
)

func birthTime(fs.FileInfo, string) (time.Time, bool) {
	return time.Time{}, false
}

func setBirthTime(string, time.Time) error {
	return ErrCreationUnsupported
}
