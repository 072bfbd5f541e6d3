package cfg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "chainset"
	defaultsFile   = "config.yaml"
	envCapacity    = "CHAINSET_CAPACITY"
	envLoadFactor  = "CHAINSET_LOAD_FACTOR"
	envConfigDir   = "XDG_CONFIG"
	envHome        = "HOME"
	fallbackConfig = ".config"
)

type kConfigProviderContextKey struct{}

func FromContext(ctx context.Context) *ConfigProvider {
	v := ctx.Value(kConfigProviderContextKey{})
	if v == nil {
		return nil
	}
	cfg, ok := v.(*ConfigProvider)
	if !ok {
		panic(fmt.Errorf("unexpected type for ConfigProvider context value: %v", v))
	}
	return cfg
}

func WithConfigProvider(ctx context.Context, cfg *ConfigProvider) context.Context {
	return context.WithValue(ctx, kConfigProviderContextKey{}, cfg)
}

// ConfigProvider resolves settings from the environment and from files in
// the chainset config directory.
type ConfigProvider struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

// Defaults are the set construction parameters used by the CLI when no flag
// overrides them. Zero values mean "use the library default".
type Defaults struct {
	Capacity   int     `yaml:"capacity"`
	LoadFactor float64 `yaml:"loadFactor"`
}

func (c *ConfigProvider) getenv(name string) string {
	if c.Getenv != nil {
		return c.Getenv(name)
	}
	return os.Getenv(name)
}

func (c *ConfigProvider) ReadFile(name string) ([]byte, error) {
	basePath, err := c.determineCommandConfigPath()
	if err != nil {
		return nil, err
	}
	name = path.Clean(name)
	if path.IsAbs(name) {
		return nil, fmt.Errorf("expected relative path but was absolute: %s", name)
	}
	if strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid ConfigProvider path: %s", name)
	}
	p := filepath.Join(basePath, name)

	return os.ReadFile(p)
}

// Defaults reads config.yaml, if present, and applies environment overrides.
func (c *ConfigProvider) Defaults() (*Defaults, error) {
	var d Defaults

	raw, err := c.ReadFile(defaultsFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot read %s: %w", defaultsFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", defaultsFile, err)
		}
	}

	if v := c.getenv(envCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s=%q: %w", envCapacity, v, err)
		}
		d.Capacity = n
	}
	if v := c.getenv(envLoadFactor); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s=%q: %w", envLoadFactor, v, err)
		}
		d.LoadFactor = f
	}

	return &d, nil
}

func (c *ConfigProvider) determineCommandConfigPath() (string, error) {
	dir, err := c.determineConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

func (c *ConfigProvider) determineConfigPath() (string, error) {
	dir := c.getenv(envConfigDir)
	if dir != "" {
		return dir, nil
	}

	home := c.getenv(envHome)
	if home == "" {
		return "", fmt.Errorf("cannot determine $HOME directory, env variable not set")
	}

	// default XDG_CONFIG
	return filepath.Join(home, fallbackConfig), nil
}
