// Package console interprets debug commands against a running game.
//
// Commands are registered by name in a Registry. A line is split on
// whitespace, the first field selects the command and the rest are its
// arguments. Commands return the text to print.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/LeJamon/goMFS/internal/core/game"
	"github.com/LeJamon/goMFS/internal/engine"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrUnavailable    = errors.New("not available in this session")
)

// Command is one console verb.
type Command struct {
	Name    string
	Args    string
	Summary string
	Run     func(ctx context.Context, c *Console, args []string) (string, error)
}

func (cmd Command) usage() error {
	return fmt.Errorf("%w: %s %s", ErrUsage, cmd.Name, cmd.Args)
}

// Registry maps command names to commands.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds or replaces a command.
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name] = cmd
}

// Get looks up a command by name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name.
func (r *Registry) List() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Console binds the command set to a game.
type Console struct {
	game     *game.Game
	registry *Registry
	saver    engine.Saver
	stats    func() engine.Stats
	logger   *slog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithSaver enables the save command.
func WithSaver(s engine.Saver) Option {
	return func(c *Console) {
		c.saver = s
	}
}

// WithStats enables the performance command.
func WithStats(f func() engine.Stats) Option {
	return func(c *Console) {
		c.stats = f
	}
}

// WithLogger sets the logger used for executed commands.
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) {
		c.logger = l
	}
}

// New returns a console with every built-in command.
func New(g *game.Game, opts ...Option) *Console {
	c := &Console{
		game:     g,
		registry: NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	registerBuiltins(c.registry)
	return c
}

// Registry exposes the command set for extension.
func (c *Console) Registry() *Registry {
	return c.registry
}

// Exec runs one command line. An empty line is a no-op.
func (c *Console) Exec(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := c.registry.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	c.logger.Debug("console command", "cmd", name, "args", fields[1:])
	return cmd.Run(ctx, c, fields[1:])
}

// Serve reads commands from r until EOF, "quit" or ctx is done, writing
// results and errors to w. Command errors are printed and do not stop the
// loop.
func (c *Console) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}

		out, err := c.Exec(ctx, line)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
}
