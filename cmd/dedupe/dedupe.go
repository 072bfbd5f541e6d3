package dedupe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/trichner/chainset/pkg/linesets"
)

type cli struct {
	Capacity   int      `help:"Initial capacity of the set."`
	LoadFactor float64  `help:"Load factor that triggers a resize."`
	Count      bool     `help:"Only print the number of unique lines."`
	Files      []string `arg:"" optional:"" type:"existingfile" help:"Input files, stdin if none."`
}

func Completions() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"capacity":    predict.Set{"16", "1024", "65536"},
			"load-factor": predict.Set{"0.5", "0.75", "1"},
			"count":       predict.Nothing,
		},
		Args: predict.Files("*"),
	}
}

func Exec(ctx context.Context, args []string) {
	// kong expects only actual arguments and not the program itself
	args = args[1:]

	var flags cli

	k, err := kong.New(&flags, kong.Name("dedupe"), kong.Description("Print each distinct input line once, in first-seen order."))
	if err != nil {
		log.Fatalf("cannot parse arguments: %v", err)
	}
	_, err = k.Parse(args)
	if err != nil {
		log.Fatalf("cannot parse arguments: %v", err)
	}

	if err := run(ctx, &flags, os.Stdin, os.Stdout); err != nil {
		slog.Error("failed to dedupe", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *cli, in io.Reader, out io.Writer) error {
	s, err := linesets.NewSet(ctx, opts.Capacity, opts.LoadFactor)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)

	var writeErr error
	err = linesets.Each(in, opts.Files, func(line string) {
		if !s.Add(line) || opts.Count || writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintln(w, line)
	})
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	slog.Debug("dedupe done", "unique", s.Len(), "buckets", s.Cap())

	if opts.Count {
		fmt.Fprintln(w, s.Len())
	}
	return w.Flush()
}
