package testhelpers

import (
	"bytes"
	"context"
	"testing"

	"gq.dev/gq/internal/git"
	"gq.dev/gq/internal/runtime"
	"gq.dev/gq/internal/tui"
)

// NewTestContext builds a runtime context over port. Console output is
// captured in the returned buffer. The context has no gateway or prompter
// scripted; tests set them with WithGateway and WithPrompter.
func NewTestContext(t *testing.T, port git.Port) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := runtime.NewContext(context.Background(), git.NewRepo(port), tui.NewConsoleSplog(&out))
	ctx.WithPrompter(NewScriptedPrompter())
	return ctx, &out
}
