// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fstime

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime asks statx for the birth time. Many Linux filesystems track it
// even though plain stat(2) cannot report it.
func birthTime(_ fs.FileInfo, path string) (time.Time, bool) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}

// Linux offers no interface for changing a file's birth time.
func setBirthTime(string, time.Time) error {
	return ErrCreationUnsupported
}
