package setops

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/trichner/chainset/pkg/hashset"
	"github.com/trichner/chainset/pkg/linesets"
)

type cli struct {
	Op         string  `arg:"" enum:"union,intersect,minus,equal" help:"One of union, intersect, minus, equal."`
	Left       string  `arg:"" type:"existingfile" help:"Left operand, one element per line."`
	Right      string  `arg:"" type:"existingfile" help:"Right operand, one element per line."`
	Sort       bool    `help:"Sort the resulting lines."`
	Capacity   int     `help:"Initial capacity of each set."`
	LoadFactor float64 `help:"Load factor that triggers a resize."`
}

func Completions() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"sort":        predict.Nothing,
			"capacity":    predict.Set{"16", "1024", "65536"},
			"load-factor": predict.Set{"0.5", "0.75", "1"},
		},
		Args: predict.Or(predict.Set{"union", "intersect", "minus", "equal"}, predict.Files("*")),
	}
}

func Exec(ctx context.Context, args []string) {
	// kong expects only actual arguments and not the program itself
	args = args[1:]

	var flags cli

	k, err := kong.New(&flags, kong.Name("setops"), kong.Description("Combine the line sets of two files."))
	if err != nil {
		log.Fatalf("cannot parse arguments: %v", err)
	}
	_, err = k.Parse(args)
	if err != nil {
		log.Fatalf("cannot parse arguments: %v", err)
	}

	if err := run(ctx, &flags, os.Stdout); err != nil {
		slog.Error("failed to combine sets", "op", flags.Op, "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *cli, out io.Writer) error {
	left, err := load(ctx, opts, opts.Left)
	if err != nil {
		return err
	}
	right, err := load(ctx, opts, opts.Right)
	if err != nil {
		return err
	}

	var changed bool
	switch opts.Op {
	case "union":
		changed = left.AddAll(right.All())
	case "intersect":
		changed = left.RetainAll(right)
	case "minus":
		changed = left.RemoveAll(right.All())
	case "equal":
		_, err := fmt.Fprintln(out, left.Equal(right))
		return err
	default:
		return fmt.Errorf("unknown operation %q", opts.Op)
	}

	slog.Debug("set operation applied", "op", opts.Op, "changed", changed, "size", left.Len())

	lines := left.ToSlice()
	if opts.Sort {
		slices.Sort(lines)
	}

	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

func load(ctx context.Context, opts *cli, path string) (*hashset.HashSet[string], error) {
	s, err := linesets.NewSet(ctx, opts.Capacity, opts.LoadFactor)
	if err != nil {
		return nil, err
	}
	if err := linesets.Load(s, nil, path); err != nil {
		return nil, err
	}
	return s, nil
}
