//go:build windows
// +build windows

package services

import (
	"errors"

	"golang.org/x/sys/windows"
)

// LocalVolumes lists mounted drive roots via the logical drive bitmask.
type LocalVolumes struct{}

func NewLocalVolumes() *LocalVolumes {
	return &LocalVolumes{}
}

func (volumes *LocalVolumes) List() ([]string, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}
	roots := make([]string, 0, 26)
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		root := string(rune('A'+i)) + ":\\"
		ptr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}
		switch windows.GetDriveType(ptr) {
		case windows.DRIVE_UNKNOWN, windows.DRIVE_NO_ROOT_DIR:
			continue
		}
		roots = append(roots, root)
	}
	return roots, nil
}

func (volumes *LocalVolumes) Info(root string) (VolumeInfo, error) {
	ptr, err := windows.UTF16PtrFromString(root)
	if err != nil {
		return VolumeInfo{}, err
	}
	var nameBuf [windows.MAX_PATH + 1]uint16
	var fsBuf [windows.MAX_PATH + 1]uint16
	var serial, maxComponent, flags uint32
	err = windows.GetVolumeInformation(
		ptr,
		&nameBuf[0], uint32(len(nameBuf)),
		&serial, &maxComponent, &flags,
		&fsBuf[0], uint32(len(fsBuf)),
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_NOT_READY) {
			return VolumeInfo{Ready: false}, nil
		}
		return VolumeInfo{}, err
	}
	return VolumeInfo{Label: windows.UTF16ToString(nameBuf[:]), Ready: true}, nil
}
