package setops

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, left, right string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	l := filepath.Join(dir, "left")
	r := filepath.Join(dir, "right")
	require.NoError(t, os.WriteFile(l, []byte(left), 0o600))
	require.NoError(t, os.WriteFile(r, []byte(right), 0o600))
	return l, r
}

func TestRun(t *testing.T) {
	l, r := writeFiles(t, "a\nb\nc\n", "b\nc\nd\n")

	tests := []struct {
		op   string
		want string
	}{
		{"union", "a\nb\nc\nd\n"},
		{"intersect", "b\nc\n"},
		{"minus", "a\n"},
		{"equal", "false\n"},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), &cli{Op: tt.op, Left: l, Right: r, Sort: true}, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunEqual(t *testing.T) {
	l, r := writeFiles(t, "x\ny\nx\n", "y\nx\n")

	var out bytes.Buffer
	err := run(context.Background(), &cli{Op: "equal", Left: l, Right: r, Capacity: 1}, &out)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out.String())
}

func TestRunUnknownOp(t *testing.T) {
	l, r := writeFiles(t, "", "")
	err := run(context.Background(), &cli{Op: "xor", Left: l, Right: r}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown operation")
}
