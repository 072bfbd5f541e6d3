// Package linesets builds string sets from line-oriented input for the CLI.
package linesets

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/trichner/chainset/pkg/cfg"
	"github.com/trichner/chainset/pkg/hashset"
	"github.com/trichner/chainset/pkg/set"
)

// NewSet creates a string set. Non-zero flag values win over the defaults of
// the config provider in ctx, which win over the library defaults.
func NewSet(ctx context.Context, capacity int, loadFactor float64) (*hashset.HashSet[string], error) {
	var opts []hashset.Option

	if c := cfg.FromContext(ctx); c != nil {
		d, err := c.Defaults()
		if err != nil {
			return nil, fmt.Errorf("cannot load defaults: %w", err)
		}
		if d.Capacity != 0 {
			opts = append(opts, hashset.WithCapacity(d.Capacity))
		}
		if d.LoadFactor != 0 {
			opts = append(opts, hashset.WithLoadFactor(d.LoadFactor))
		}
	}

	if capacity != 0 {
		opts = append(opts, hashset.WithCapacity(capacity))
	}
	if loadFactor != 0 {
		opts = append(opts, hashset.WithLoadFactor(loadFactor))
	}
	opts = append(opts, hashset.WithLogger(slog.Default()))

	return hashset.New[string](opts...)
}

// Scan calls fn for each line of r.
func Scan(r io.Reader, fn func(line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

// Load adds every line of the named files to s. An empty list reads stdin.
func Load(s set.Set[string], stdin io.Reader, paths ...string) error {
	return Each(stdin, paths, func(line string) {
		s.Add(line)
	})
}

// Each calls fn for each line of the named files, or of stdin.
func Each(stdin io.Reader, paths []string, fn func(line string)) error {
	if len(paths) == 0 {
		return Scan(stdin, fn)
	}
	for _, p := range paths {
		if err := loadFile(p, fn); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	if err := Scan(f, fn); err != nil {
		return fmt.Errorf("cannot read %q: %w", path, err)
	}
	return nil
}
