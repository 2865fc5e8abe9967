package cmd

import (
	"github.com/spf13/cobra"

	"legendary/internal/config"
	"legendary/internal/dispatch"
)

// newCommands returns one cobra command per dispatch table entry.
// Names, arity and descriptions do not depend on the loaded config, so the
// default table is enough to shape the tree before flags are parsed.
func newCommands(a *app) []*cobra.Command {
	var cmds []*cobra.Command
	for _, c := range dispatch.Table(config.Default()) {
		cmds = append(cmds, &cobra.Command{
			Use:   c.Usage(),
			Short: c.Short,
			Args:  cobra.ExactArgs(c.NArgs()),
			RunE:  a.run(c.Name),
		})
	}
	return cmds
}
