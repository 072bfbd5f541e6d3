// Package cmdreg dispatches sub-commands by name and wires shell completion.
package cmdreg

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/posener/complete/v2"
)

// CommandFunc runs a sub-command. args[0] is the sub-command name.
type CommandFunc func(ctx context.Context, args []string)

type command struct {
	name       string
	fn         CommandFunc
	completion *complete.Command
}

type CommandRegistry struct {
	programName string
	commands    map[string]*command
	exit        func(int)
	stderr      io.Writer
}

type Option func(*CommandRegistry)

func WithProgramName(name string) Option {
	return func(r *CommandRegistry) {
		r.programName = name
	}
}

type RegisterOption func(*command)

// WithCompletion attaches flag and argument completion to a sub-command.
func WithCompletion(c *complete.Command) RegisterOption {
	return func(cmd *command) {
		cmd.completion = c
	}
}

func New(opts ...Option) *CommandRegistry {
	r := &CommandRegistry{
		programName: "chainset",
		commands:    make(map[string]*command),
		exit:        os.Exit,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CommandRegistry) RegisterFunc(name string, fn CommandFunc, opts ...RegisterOption) {
	cmd := &command{name: name, fn: fn}
	for _, opt := range opts {
		opt(cmd)
	}
	r.commands[name] = cmd
}

// Exec completes the command line if invoked by the shell, otherwise runs the
// sub-command named by args[1]. args is usually os.Args.
func (r *CommandRegistry) Exec(ctx context.Context, args []string) {
	r.completionCommand().Complete(r.programName)

	if len(args) < 2 {
		r.PrintHelp(r.stderr)
		r.exit(1)
		return
	}

	cmd, ok := r.commands[args[1]]
	if !ok {
		fmt.Fprintf(r.stderr, "unknown command %q\n\n", args[1])
		r.PrintHelp(r.stderr)
		r.exit(1)
		return
	}

	cmd.fn(ctx, args[1:])
}

func (r *CommandRegistry) completionCommand() *complete.Command {
	sub := make(map[string]*complete.Command, len(r.commands))
	for name, cmd := range r.commands {
		c := cmd.completion
		if c == nil {
			c = &complete.Command{}
		}
		sub[name] = c
	}
	return &complete.Command{Sub: sub}
}

// Names returns the registered sub-command names in sorted order.
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *CommandRegistry) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "usage: %s <command> [args...]\n\ncommands:\n", r.programName)
	for _, name := range r.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
