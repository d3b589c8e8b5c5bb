// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fstime

import (
	"io/fs"
	"syscall"
	"time"
)

func birthTime(fi fs.FileInfo, _ string) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), true
}

// macOS exposes the birth time but has no public API for changing it.
func setBirthTime(string, time.Time) error {
	return ErrCreationUnsupported
}
