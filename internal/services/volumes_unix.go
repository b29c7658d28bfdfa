//go:build !windows
// +build !windows

package services

// LocalVolumes lists mounted volume roots. Unix exposes a single namespace
// root; drive semantics only matter on Windows builds.
type LocalVolumes struct{}

func NewLocalVolumes() *LocalVolumes {
	return &LocalVolumes{}
}

func (volumes *LocalVolumes) List() ([]string, error) {
	return []string{"/"}, nil
}

func (volumes *LocalVolumes) Info(root string) (VolumeInfo, error) {
	return VolumeInfo{Label: "", Ready: true}, nil
}
