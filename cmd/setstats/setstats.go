package setstats

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/trichner/chainset/pkg/linesets"
)

type cli struct {
	Capacity   int      `help:"Initial capacity of the set."`
	LoadFactor float64  `help:"Load factor that triggers a resize."`
	Files      []string `arg:"" optional:"" type:"existingfile" help:"Input files, stdin if none."`
}

func Completions() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"capacity":    predict.Set{"1", "16", "1024"},
			"load-factor": predict.Set{"0.5", "0.75", "1", "4"},
		},
		Args: predict.Files("*"),
	}
}

func Exec(ctx context.Context, args []string) {
	// kong expects only actual arguments and not the program itself
	args = args[1:]

	var flags cli

	k, err := kong.New(&flags, kong.Name("setstats"), kong.Description("Report the bucket layout of a set built from input lines."))
	if err != nil {
		log.Fatalf("cannot parse arguments: %v", err)
	}
	_, err = k.Parse(args)
	if err != nil {
		log.Fatalf("cannot parse arguments: %v", err)
	}

	if err := run(ctx, &flags, os.Stdin, os.Stdout); err != nil {
		slog.Error("failed to collect stats", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *cli, in io.Reader, out io.Writer) error {
	s, err := linesets.NewSet(ctx, opts.Capacity, opts.LoadFactor)
	if err != nil {
		return err
	}
	if err := linesets.Load(s, in, opts.Files...); err != nil {
		return err
	}

	st := s.Stats()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "size\t%d\n", st.Size)
	fmt.Fprintf(w, "capacity\t%d\n", st.Capacity)
	fmt.Fprintf(w, "load factor\t%g\n", st.LoadFactor)
	fmt.Fprintf(w, "used buckets\t%d\n", st.UsedBuckets)
	fmt.Fprintf(w, "longest chain\t%d\n", st.LongestChain)
	fmt.Fprintf(w, "hash code\t%d\n", s.HashCode())
	fmt.Fprintln(w, "chain length\tbuckets")
	for _, n := range slices.Sorted(maps.Keys(st.ChainLengths)) {
		fmt.Fprintf(w, "%d\t%d\n", n, st.ChainLengths[n])
	}
	return w.Flush()
}
