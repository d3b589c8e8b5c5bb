// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fstime

import (
	"io/fs"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

func birthTime(fi fs.FileInfo, _ string) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, st.CreationTime.Nanoseconds()), true
}

func setBirthTime(path string, created time.Time) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	h, err := windows.CreateFile(p, windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE, nil,
		windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return err
	}
	defer windows.CloseHandle(h)

	ft := windows.NsecToFiletime(created.UnixNano())
	return windows.SetFileTime(h, &ft, nil, nil)
}
