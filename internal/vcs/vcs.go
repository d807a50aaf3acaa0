// Package vcs discovers version-control state for the working copy the
// tracker lives in.
package vcs

import (
	"os/exec"
	"strings"
)

// UnknownBranch is recorded on issues and comments created outside a
// recognizable git checkout.
const UnknownBranch = "<unknown>"

// CurrentBranch returns the checked-out git branch name. The second return
// is false when the working directory is not inside a git repository or
// git is not installed.
func CurrentBranch() (string, bool) {
	out, err := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return "", false
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return "", false
	}
	return branch, true
}

// CurrentBranchOrUnknown is CurrentBranch with the historical fallback
// value used in stored records.
func CurrentBranchOrUnknown() string {
	if branch, ok := CurrentBranch(); ok {
		return branch
	}
	return UnknownBranch
}
