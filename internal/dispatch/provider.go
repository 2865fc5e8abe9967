package dispatch

import (
	"path/filepath"
	"strings"
)

// ArgPlaceholder marks where the command's positional argument goes in a
// provider's argument template.
const ArgPlaceholder = "{arg}"

// Provider is one program a step may spawn, with a fixed argument template.
type Provider struct {
	Program string
	Args    []string
}

// Name is the program's base name, used in user-facing messages.
func (p Provider) Name() string {
	return filepath.Base(p.Program)
}

// Argv returns the argument vector with every ArgPlaceholder replaced by arg.
// The template itself is never modified.
func (p Provider) Argv(arg string) []string {
	argv := make([]string, len(p.Args))
	for i, a := range p.Args {
		argv[i] = strings.ReplaceAll(a, ArgPlaceholder, arg)
	}
	return argv
}

// Step runs its providers in order until one succeeds.
// A single-provider step has no fallback.
//
// Message templates may use {arg}, {provider} (the provider that produced the
// outcome) and {next} (the provider about to be tried, Fallback only).
type Step struct {
	Intro     string
	Providers []Provider
	Fallback  string
	Success   string
	Failure   string
	// Soft failures are printed as a caution on stdout rather than an error.
	Soft bool
}

func expand(tpl, arg, provider, next string) string {
	return strings.NewReplacer(
		ArgPlaceholder, arg,
		"{provider}", provider,
		"{next}", next,
	).Replace(tpl)
}
