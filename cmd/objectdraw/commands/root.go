package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "objectdraw",
	Short: "objectdraw is a shape description command processor",
	Long: `objectdraw processes a small textual command language for describing
geometric shapes (lines, triangles, rectangles, squares) and connections
between them, interactively or from script files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	},
}

// Execute adds all child commands to the root command and runs it. Called
// once from main.
func Execute() {
	// A .env file can provide defaults such as OBJECTDRAW_HISTORY; a
	// missing file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
