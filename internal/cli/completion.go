package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazetrace/pkg/catalog"
	"github.com/matzehuels/mazetrace/pkg/pipeline"
	"github.com/matzehuels/mazetrace/pkg/search"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for mazetrace.

To load completions:

Bash:
  $ source <(mazetrace completion bash)

Zsh:
  $ mazetrace completion zsh > "${fpath[1]}/_mazetrace"

Fish:
  $ mazetrace completion fish | source

PowerShell:
  PS> mazetrace completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}

// completeMazes offers preset names for the first argument only.
func completeMazes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
}

func completeAlgorithms(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return search.Names(), cobra.ShellCompDirectiveNoFileComp
}

func completeFormats(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{
		formatText,
		pipeline.FormatJSON, pipeline.FormatSVG, pipeline.FormatPNG,
		pipeline.FormatPDF, pipeline.FormatDOT, pipeline.FormatTree,
	}, cobra.ShellCompDirectiveNoFileComp
}
