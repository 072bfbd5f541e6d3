package setstats

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("a\nb\na\n")

	err := run(context.Background(), &cli{Capacity: 4}, in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "size           2\n")
	assert.Contains(t, got, "capacity       4\n")
	assert.Contains(t, got, "used buckets   2\n")
	assert.Contains(t, got, "hash code      195\n")
	assert.Contains(t, got, "0              2\n")
	assert.Contains(t, got, "1              2\n")
}
