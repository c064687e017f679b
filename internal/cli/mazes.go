package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetrace/pkg/catalog"
	mio "github.com/matzehuels/mazetrace/pkg/io"
	"github.com/matzehuels/mazetrace/pkg/maze"
)

// mazesCommand creates the mazes command with list and show subcommands.
func (c *CLI) mazesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mazes",
		Short: "Inspect the preset mazes",
	}
	cmd.AddCommand(c.mazesListCommand())
	cmd.AddCommand(c.mazesShowCommand())
	return cmd
}

func (c *CLI) mazesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List preset mazes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listMazes(cmd.OutOrStdout(), c.newRunner().Catalog)
		},
	}
}

func (c *CLI) mazesShowCommand() *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a preset maze",
		Long: `Print a preset maze with its endpoints.

With --export the maze is written as a custom maze description (.json or
.toml) that 'mazetrace run --file' and POST /run accept.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeMazes,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.newRunner().Catalog.Get(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if export != "" {
				if err := mio.Export(maze.Describe(m.Grid, m.Start, m.End), export); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debugf("Exported %s to %s", m.Name, export)
				printSuccess(w, "Exported %s", m.Name)
				printFile(w, export)
				return nil
			}
			showMaze(w, m)
			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "write the maze as a custom description file")
	return cmd
}

func listMazes(w io.Writer, cat *catalog.Catalog) error {
	rows := make([][]string, 0, cat.Len())
	for _, name := range cat.Names() {
		m, err := cat.Get(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%dx%d", m.Grid.Rows(), m.Grid.Cols()),
			m.Start.String() + " " + iconArrow + " " + m.End.String(),
			m.Description,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Maze", "Size", "Endpoints", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return StyleTitle.Padding(0, 1)
			default:
				return StyleValue.Padding(0, 1)
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func showMaze(w io.Writer, m catalog.Maze) {
	fmt.Fprintln(w, StyleTitle.Render(m.Name))
	if m.Description != "" {
		fmt.Fprintln(w, StyleDim.Render(m.Description))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, boardView{grid: m.Grid, start: m.Start, end: m.End}.render())
	fmt.Fprintln(w)
	printKeyValue(w, "size", fmt.Sprintf("%dx%d", m.Grid.Rows(), m.Grid.Cols()))
	printKeyValue(w, "start", m.Start.String())
	printKeyValue(w, "end", m.End.String())
	printKeyValue(w, "walls", fmt.Sprint(len(m.Grid.Walls())))
}
