package config

import (
	"os"
	"path/filepath"
)

// SnapshotFile is the file name of the default SQLite export.
const SnapshotFile = "localecodes.db"

// GetHome returns the localecodes home directory (~/.localecodes).
func GetHome() string {
	userHome, _ := os.UserHomeDir()
	return filepath.Join(userHome, ".localecodes")
}

// DefaultSnapshotPath returns where `localecodes export` writes when no path
// is given.
func DefaultSnapshotPath() string {
	return filepath.Join(GetHome(), SnapshotFile)
}

// ExpandPath expands ~ to the user home directory.
func ExpandPath(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		home, _ := os.UserHomeDir()
		if len(path) == 1 {
			return home
		}
		if path[1] == '/' || path[1] == os.PathSeparator {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
