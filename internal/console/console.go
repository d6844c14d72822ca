// Package console implements the interactive command loop of the video
// player. Each input line is one command; the first word selects it,
// ignoring case, and the remaining words are its arguments.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"video-player/internal/logging"
	"video-player/internal/player"
)

const (
	welcome  = "Hello and welcome to YouTube, what would you like to do? Enter HELP for list of available commands or EXIT to terminate."
	goodbye  = "YouTube has now terminated its execution. Thank you and goodbye!"
	invalid  = "Please enter a valid command, type HELP for a list of available commands."
	noReason = "Not supplied"
)

// Console reads commands from in and writes results to out.
type Console struct {
	player    *player.Controller
	in        *bufio.Scanner
	out       io.Writer
	prompt    string
	exportDir string
}

// Option configures a Console.
type Option func(*Console)

// WithPrompt prints prompt before each command is read. Interactive
// terminals use "> "; piped input gets none.
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

// WithExportDir sets the directory EXPORT_PLAYLIST writes to when no file
// is given. The default is the working directory.
func WithExportDir(dir string) Option {
	return func(c *Console) {
		c.exportDir = dir
	}
}

// New creates a console driving p.
func New(p *player.Controller, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		player: p,
		in:     bufio.NewScanner(in),
		out:    out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run prints the welcome banner and executes commands until EXIT, end of
// input or cancellation of ctx. Cancellation is noticed between commands.
func (c *Console) Run(ctx context.Context) error {
	c.println(welcome)
	defer c.println(goodbye)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}
		if c.Execute(line) {
			return nil
		}
	}
}

// Execute runs a single command line. It reports whether the line was EXIT.
func (c *Console) Execute(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		c.println(invalid)
		return false
	}

	name := strings.ToUpper(fields[0])
	if name == "EXIT" {
		return true
	}

	cmd, ok := commands[name]
	if !ok {
		logging.Debug("Unknown console command %q", fields[0])
		c.println(invalid)
		return false
	}

	args := fields[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		c.printf("Invalid arguments for %s. Usage: %s\n", name, cmd.usage)
		return false
	}

	cmd.run(c, args)
	return false
}

func (c *Console) readLine() (string, bool) {
	if c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
