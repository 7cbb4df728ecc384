package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeBranchName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name passes through", input: "feature", expected: "feature"},
		{name: "spaces replaced with hyphens", input: "my feature branch", expected: "my-feature-branch"},
		{name: "special characters replaced", input: "feature!@#$%^&*()", expected: "feature"},
		{name: "slashes and dots preserved", input: "feature/v1.0", expected: "feature/v1.0"},
		{name: "trailing dots and slashes removed", input: "feature./.", expected: "feature"},
		{name: "consecutive hyphens collapsed", input: "my---feature", expected: "my-feature"},
		{name: "surrounding whitespace trimmed", input: "  feature  ", expected: "feature"},
		{name: "commit style subject", input: "feat: add new feature!", expected: "feat-add-new-feature"},
		{name: "only special chars returns empty", input: "!@#$%", expected: ""},
		{name: "empty string returns empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, SanitizeBranchName(tt.input))
		})
	}
}

func TestSanitizeBranchName_MaxLength(t *testing.T) {
	t.Parallel()

	long := SanitizeBranchName(strings.Repeat("a", MaxBranchNameByteLength+10))
	require.Len(t, long, MaxBranchNameByteLength)

	// a cut that lands on a hyphen drops it
	cut := SanitizeBranchName(strings.Repeat("a", MaxBranchNameByteLength-1) + " tail")
	require.Equal(t, strings.Repeat("a", MaxBranchNameByteLength-1), cut)
}
