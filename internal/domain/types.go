package domain

type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindDrive
	KindDirectory
)

// SymlinkPolicy decides whether symlinked (or reparse-point) directories
// are materialized as children during expansion.
type SymlinkPolicy string

const (
	SymlinkFollow SymlinkPolicy = "follow"
	SymlinkSkip   SymlinkPolicy = "skip"
)

func ValidSymlinkPolicy(value string) bool {
	switch SymlinkPolicy(value) {
	case SymlinkFollow, SymlinkSkip:
		return true
	default:
		return false
	}
}
