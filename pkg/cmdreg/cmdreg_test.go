package cmdreg

import (
	"bytes"
	"context"
	"testing"

	"github.com/posener/complete/v2"
	"github.com/stretchr/testify/assert"
)

func newTestRegistry() (*CommandRegistry, *bytes.Buffer, *int) {
	var stderr bytes.Buffer
	code := -1
	r := New(WithProgramName("test"))
	r.stderr = &stderr
	r.exit = func(c int) { code = c }
	return r, &stderr, &code
}

func TestExecDispatches(t *testing.T) {
	r, _, code := newTestRegistry()

	var got []string
	r.RegisterFunc("echo", func(_ context.Context, args []string) {
		got = args
	}, WithCompletion(&complete.Command{}))

	r.Exec(context.Background(), []string{"test", "echo", "a", "b"})
	assert.Equal(t, []string{"echo", "a", "b"}, got)
	assert.Equal(t, -1, *code)
}

func TestExecUnknownCommand(t *testing.T) {
	r, stderr, code := newTestRegistry()
	r.RegisterFunc("one", func(context.Context, []string) {})

	r.Exec(context.Background(), []string{"test", "two"})
	assert.Equal(t, 1, *code)
	assert.Contains(t, stderr.String(), `unknown command "two"`)
	assert.Contains(t, stderr.String(), "  one\n")
}

func TestExecNoCommand(t *testing.T) {
	r, stderr, code := newTestRegistry()
	r.Exec(context.Background(), []string{"test"})
	assert.Equal(t, 1, *code)
	assert.Contains(t, stderr.String(), "usage: test <command>")
}

func TestNamesSorted(t *testing.T) {
	r := New()
	for _, n := range []string{"zeta", "alpha", "mid"} {
		r.RegisterFunc(n, func(context.Context, []string) {})
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}
