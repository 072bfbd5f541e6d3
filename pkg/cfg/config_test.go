package cfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestContextRoundTrip(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	c := &ConfigProvider{}
	ctx := WithConfigProvider(context.Background(), c)
	assert.Same(t, c, FromContext(ctx))
}

func TestDefaultsFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chainset"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chainset", "config.yaml"),
		[]byte("capacity: 64\nloadFactor: 0.5\n"), 0o600))

	c := &ConfigProvider{Getenv: envMap(map[string]string{"XDG_CONFIG": dir})}
	d, err := c.Defaults()
	require.NoError(t, err)
	assert.Equal(t, 64, d.Capacity)
	assert.Equal(t, 0.5, d.LoadFactor)
}

func TestDefaultsEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	c := &ConfigProvider{Getenv: envMap(map[string]string{
		"XDG_CONFIG":           dir,
		"CHAINSET_CAPACITY":    "8",
		"CHAINSET_LOAD_FACTOR": "2",
	})}
	d, err := c.Defaults()
	require.NoError(t, err)
	assert.Equal(t, &Defaults{Capacity: 8, LoadFactor: 2}, d)
}

func TestDefaultsMissingFile(t *testing.T) {
	c := &ConfigProvider{Getenv: envMap(map[string]string{"HOME": t.TempDir()})}
	d, err := c.Defaults()
	require.NoError(t, err)
	assert.Equal(t, &Defaults{}, d)
}

func TestDefaultsInvalid(t *testing.T) {
	c := &ConfigProvider{Getenv: envMap(map[string]string{
		"XDG_CONFIG":        t.TempDir(),
		"CHAINSET_CAPACITY": "lots",
	})}
	_, err := c.Defaults()
	assert.ErrorContains(t, err, "CHAINSET_CAPACITY")
}

func TestNoHome(t *testing.T) {
	c := &ConfigProvider{Getenv: envMap(nil)}
	_, err := c.Defaults()
	assert.Error(t, err)
}

func TestReadFileRejectsEscapes(t *testing.T) {
	c := &ConfigProvider{Getenv: envMap(map[string]string{"XDG_CONFIG": t.TempDir()})}

	_, err := c.ReadFile("/etc/passwd")
	assert.ErrorContains(t, err, "absolute")

	_, err = c.ReadFile("../secrets")
	assert.ErrorContains(t, err, "invalid")
}
