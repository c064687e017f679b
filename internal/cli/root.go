package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetrace/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI's logger is attached to the command context before any subcommand
// runs, so commands fetch it with loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mazetrace runs and visualizes grid maze searches",
		Long:         `Mazetrace solves grid mazes with breadth-first, depth-first, greedy best-first and A* search, and shows the order in which each strategy explores the maze.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.mazesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
