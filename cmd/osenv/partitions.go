package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sonnet007/AppManager/internal/environ"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(16)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	overrideStyle = lipgloss.NewStyle().Faint(true)
)

// partitionsCmd lists the partition roots as resolved at startup.
var partitionsCmd = &cobra.Command{
	Use:   "partitions",
	Short: "List resolved partition roots",
	Long: `List every named partition root together with the environment variable
that can override it. Roots are resolved once at startup; changing the
environment afterwards has no effect.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Partition roots"))
		for _, root := range environ.PartitionRoots() {
			override := overrideStyle.Render(fmt.Sprintf("  (%s)", root.Variable))
			if root.Path != root.Default {
				override = overrideStyle.Render(fmt.Sprintf("  (%s, default %s)", root.Variable, root.Default))
			}
			fmt.Println(nameStyle.Render(root.Name) + pathStyle.Render(root.Path) + override)
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("Derived data directories"))
		fmt.Println(nameStyle.Render("data/system") + pathStyle.Render(environ.DataSystemDirectory()))
		fmt.Println(nameStyle.Render("data/app") + pathStyle.Render(environ.DataAppDirectory()))
		fmt.Println(nameStyle.Render("data/data") + pathStyle.Render(environ.DataDataDirectory()))
	},
}

func init() {
	rootCmd.AddCommand(partitionsCmd)
}
