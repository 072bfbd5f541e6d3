package linesets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trichner/chainset/pkg/cfg"
	"github.com/trichner/chainset/pkg/hashset"
)

func TestNewSetPrecedence(t *testing.T) {
	env := map[string]string{
		"XDG_CONFIG":           t.TempDir(),
		"CHAINSET_CAPACITY":    "100",
		"CHAINSET_LOAD_FACTOR": "2",
	}
	ctx := cfg.WithConfigProvider(context.Background(), &cfg.ConfigProvider{
		Getenv: func(k string) string { return env[k] },
	})

	s, err := NewSet(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 128, s.Cap())
	assert.Equal(t, 2.0, s.LoadFactor())

	s, err = NewSet(ctx, 3, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Cap())
	assert.Equal(t, 0.5, s.LoadFactor())
}

func TestNewSetWithoutConfig(t *testing.T) {
	s, err := NewSet(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, hashset.DefaultCapacity, s.Cap())

	_, err = NewSet(context.Background(), -1, 0)
	assert.ErrorIs(t, err, hashset.ErrInvalidArgument)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("x\ny\nx\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("y\nz"), 0o600))

	s := hashset.MustNew[string]()
	require.NoError(t, Load(s, nil, a, b))
	assert.ElementsMatch(t, []string{"x", "y", "z"}, s.ToSlice())

	err := Load(s, nil, filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "cannot open")
}

func TestLoadStdin(t *testing.T) {
	s := hashset.MustNew[string]()
	require.NoError(t, Load(s, strings.NewReader("1\n2\n2\n\n")))
	assert.ElementsMatch(t, []string{"1", "2", ""}, s.ToSlice())
}
