// Package version resolves the displayed application version from build
// artifacts: a VERSION file written at release time and a transient
// commit-id file written by the build wrapper.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	VersionFile  = "VERSION"
	CommitIDFile = "commit_id"
)

// Resolve reads the version and commit-id files from dir and concatenates
// them for on-screen display. A missing commit file degrades to the bare
// version; a missing version file yields "dev".
func Resolve(dir string) string {
	ver := readTrimmed(filepath.Join(dir, VersionFile))
	if ver == "" {
		ver = "dev"
	}
	commit := readTrimmed(filepath.Join(dir, CommitIDFile))
	if commit == "" {
		return ver
	}
	return fmt.Sprintf("%s (%s)", ver, commit)
}

func readTrimmed(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
