package dispatch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"legendary/internal/config"
	"legendary/internal/logger"
	"legendary/internal/runner"
)

// Version is reported by --version and the about command.
const Version = "1.0.0"

// Dispatcher resolves a command name against the table and carries it out,
// printing status as it goes.
type Dispatcher struct {
	cfg      config.Config
	runner   runner.Runner
	commands []Command
	stdout   io.Writer
	stderr   io.Writer
	colorize bool
}

// New returns a Dispatcher for cfg. Status lines go to stdout, failures to
// stderr; colorize selects decorated output.
func New(cfg config.Config, r runner.Runner, stdout, stderr io.Writer, colorize bool) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		runner:   r,
		commands: Table(cfg),
		stdout:   stdout,
		stderr:   stderr,
		colorize: colorize,
	}
}

// Commands returns the dispatch table in help-listing order.
func (d *Dispatcher) Commands() []Command {
	return d.commands
}

// Lookup finds a command by name.
func (d *Dispatcher) Lookup(name string) (Command, bool) {
	for _, c := range d.commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// Dispatch runs the named command with args and reports whether it succeeded.
// An empty name is help. Unknown names and wrong argument counts are returned
// as errors before anything is spawned.
func (d *Dispatcher) Dispatch(name string, args []string) (bool, error) {
	if name == "" {
		name = "help"
	}
	c, ok := d.Lookup(name)
	if !ok {
		return false, fmt.Errorf("unknown command %q", name)
	}
	if len(args) != c.NArgs() {
		if c.NArgs() == 0 {
			return false, fmt.Errorf("%s takes no arguments, got %d", c.Name, len(args))
		}
		return false, fmt.Errorf("%s requires exactly one <%s> argument, got %d", c.Name, c.ArgName, len(args))
	}

	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	logger.Debug("[DEBUG] Dispatching %s (arg %q)\n", c.Name, arg)

	switch c.Kind {
	case Help:
		d.help()
		return true, nil
	case About:
		d.about(c)
		return true, nil
	default:
		return d.process(c, arg), nil
	}
}

// process runs every step of c unconditionally. The command succeeds when its
// last step does.
func (d *Dispatcher) process(c Command, arg string) bool {
	if c.Title != "" {
		d.title(c.Title, c.Rule)
	}
	ok := false
	for _, s := range c.Steps {
		ok = d.step(s, arg)
	}
	return ok
}

// step tries each provider in order and stops at the first success.
func (d *Dispatcher) step(s Step, arg string) bool {
	d.say(d.stdout, logger.Progress, expand(s.Intro, arg, "", ""))

	for i, p := range s.Providers {
		if i > 0 {
			prev := s.Providers[i-1]
			d.say(d.stdout, logger.Caution, expand(s.Fallback, arg, prev.Name(), p.Name()))
		}
		if d.run(p, arg) {
			d.say(d.stdout, logger.Done, expand(s.Success, arg, p.Name(), ""))
			return true
		}
	}

	last := ""
	if n := len(s.Providers); n > 0 {
		last = s.Providers[n-1].Name()
	}
	msg := expand(s.Failure, arg, last, "")
	if s.Soft {
		d.say(d.stdout, logger.Caution, msg)
	} else {
		d.say(d.stderr, logger.Failure, msg)
	}
	return false
}

// run spawns one provider and reports its outcome.
func (d *Dispatcher) run(p Provider, arg string) bool {
	argv := p.Argv(arg)
	d.say(d.stdout, logger.Dim, "Executing: "+strings.Join(append([]string{p.Program}, argv...), " "))

	outcome, err := d.runner.Run(p.Program, argv)
	switch outcome {
	case runner.Succeeded:
		d.say(d.stdout, logger.Progress, fmt.Sprintf("Command %s completed successfully!", p.Program))
	case runner.LaunchFailed:
		d.say(d.stderr, logger.Failure, fmt.Sprintf("Error running %s: %v", p.Program, err))
	default:
		d.say(d.stderr, logger.Failure, fmt.Sprintf("Command %s failed.", p.Program))
	}
	return outcome.OK()
}

// about prints the about file and the static metadata. A read failure is
// reported and the metadata is printed regardless.
func (d *Dispatcher) about(c Command) {
	d.title(c.Title, c.Rule)
	if art, err := os.ReadFile(d.cfg.AboutFile); err != nil {
		logger.Debug("[DEBUG] Reading %s: %v\n", d.cfg.AboutFile, err)
		d.say(d.stderr, logger.Failure, "Failed to read "+d.cfg.AboutFile)
	} else {
		d.say(d.stdout, logger.Art, string(art))
	}
	d.say(d.stdout, logger.Done, "System: LegendaryOS")
	d.say(d.stdout, logger.Done, "Tool: legendary v"+Version)
	d.say(d.stdout, logger.Done, "Description: A vibrant CLI tool for managing packages and snapshots")
	d.say(d.stdout, logger.Credit, "Developed by: LegendaryOS Team")
}

// help prints one line per command in table order.
func (d *Dispatcher) help() {
	d.title(helpTitle, strings.Repeat("-", len(helpTitle)))
	for _, c := range d.commands {
		d.say(d.stdout, logger.Entry, fmt.Sprintf("%-15s- %s", c.Usage(), c.Summary))
	}
}

const helpTitle = "Legendary CLI Tool - Available Commands"

func (d *Dispatcher) title(text, rule string) {
	d.say(d.stdout, logger.Title, text)
	d.say(d.stdout, logger.Rule, rule)
}

func (d *Dispatcher) say(w io.Writer, s logger.Style, text string) {
	_, _ = fmt.Fprintln(w, logger.Paint(text, s, d.colorize))
}
