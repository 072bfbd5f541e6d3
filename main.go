package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/trichner/chainset/cmd/dedupe"
	"github.com/trichner/chainset/cmd/setops"
	"github.com/trichner/chainset/cmd/setstats"
	"github.com/trichner/chainset/pkg/cfg"
	"github.com/trichner/chainset/pkg/cmdreg"
)

func main() {
	level := new(slog.LevelVar)
	if v := os.Getenv("CHAINSET_LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			slog.Warn("ignoring invalid log level", "value", v, "err", err)
		}
	}

	tintOpts := &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, tintOpts)))

	r := cmdreg.New(cmdreg.WithProgramName("chainset"))

	r.RegisterFunc("dedupe", dedupe.Exec, cmdreg.WithCompletion(dedupe.Completions()))
	r.RegisterFunc("setops", setops.Exec, cmdreg.WithCompletion(setops.Completions()))
	r.RegisterFunc("setstats", setstats.Exec, cmdreg.WithCompletion(setstats.Completions()))

	r.RegisterFunc("help", help(r))

	ctx := cfg.WithConfigProvider(context.Background(), &cfg.ConfigProvider{})
	r.Exec(ctx, os.Args)
}

func help(r *cmdreg.CommandRegistry) cmdreg.CommandFunc {
	return func(_ context.Context, args []string) {
		r.PrintHelp(os.Stdout)
	}
}
