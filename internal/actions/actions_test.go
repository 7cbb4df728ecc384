package actions_test

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gq.dev/gq/testhelpers"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// chainPort is main <- a <- b with current as the checked-out branch
func chainPort(current string) *testhelpers.FakePort {
	return testhelpers.NewStackPort(
		[]string{"main", "a", "b"},
		[]string{
			"main 1111111 [origin/main] init",
			"a 2222222 [main] second",
			"b 3333333 [a] tip",
		},
		current).
		On("git status", "On branch "+current)
}
