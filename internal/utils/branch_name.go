package utils

import (
	"regexp"
	"strings"
)

// MaxBranchNameByteLength keeps refs/heads/<name> within git's 255 byte ref limit
const MaxBranchNameByteLength = 255 - len("refs/heads/")

var (
	// branchNameReplaceRegex matches runs of characters gq does not put in branch names.
	// Valid characters: letters, numbers, -, _, /, .
	branchNameReplaceRegex = regexp.MustCompile(`[^-_/.a-zA-Z0-9]+`)

	// branchNameIgnoreRegex matches trailing slashes and dots
	branchNameIgnoreRegex = regexp.MustCompile(`[/.]*$`)

	hyphenRunRegex = regexp.MustCompile(`-+`)
)

// SanitizeBranchName turns free text into a usable branch name. It returns
// "" when nothing usable is left.
func SanitizeBranchName(name string) string {
	name = strings.TrimSpace(name)
	name = branchNameIgnoreRegex.ReplaceAllString(name, "")
	name = branchNameReplaceRegex.ReplaceAllString(name, "-")
	name = hyphenRunRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) > MaxBranchNameByteLength {
		name = strings.TrimSuffix(name[:MaxBranchNameByteLength], "-")
	}
	return name
}
