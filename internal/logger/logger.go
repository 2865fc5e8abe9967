package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Style names one of the text decorations used on the console.
// A Style carries no state of its own; Paint maps it to fatih/color attributes.
type Style int

const (
	Plain    Style = iota // no decoration
	Dim                   // echoed commands
	Progress              // green bold, an action is starting or a process succeeded
	Done                  // cyan bold, an action completed
	Caution               // yellow bold, a fallback is being tried
	Failure               // red bold, something failed
	Title                 // magenta bold section titles
	Rule                  // magenta underline under titles
	Art                   // blue bold ASCII art
	Credit                // magenta bold credits line
	Entry                 // yellow bold help entries
)

// attributes maps each Style to the fatih/color attributes that render it.
var attributes = map[Style][]color.Attribute{
	Plain:    nil,
	Dim:      {color.Faint},
	Progress: {color.FgGreen, color.Bold},
	Done:     {color.FgCyan, color.Bold},
	Caution:  {color.FgYellow, color.Bold},
	Failure:  {color.FgRed, color.Bold},
	Title:    {color.FgMagenta, color.Bold},
	Rule:     {color.FgMagenta, color.Underline},
	Art:      {color.FgBlue, color.Bold},
	Credit:   {color.FgMagenta, color.Bold},
	Entry:    {color.FgYellow, color.Bold},
}

// Paint returns text decorated with the given style, or text unchanged when
// enabled is false. The caller owns the colour decision; Paint consults no
// global setting.
func Paint(text string, s Style, enabled bool) string {
	attrs := attributes[s]
	if !enabled || len(attrs) == 0 {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// ColorEnabled reports whether output should be decorated: false when noColor
// is set or when fatih/color found no terminal (or NO_COLOR) at startup.
func ColorEnabled(noColor bool) bool {
	return !noColor && !color.NoColor
}

var errorColor = color.New(color.FgRed)

// Error logs error messages in red color.
// It writes to standard error so failures stay visible when stdout is piped.
var Error = func(format string, a ...any) {
	_, _ = errorColor.Fprintf(color.Error, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned by Init; the zero setting is silent so packages can trace
// before the CLI has parsed its flags.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package.
// enableDebug turns on cyan [DEBUG] tracing; noColor switches off fatih/color's
// own package setting, which Error and Debug use. Paint is unaffected.
func Init(enableDebug, noColor bool) {
	if noColor {
		color.NoColor = true
	}
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
