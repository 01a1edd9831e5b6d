package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/objectdraw/objectdraw/console"
	"github.com/objectdraw/objectdraw/viz"
)

var evalCmd = &cobra.Command{
	Use:   "eval <command text...>",
	Short: "Parse and dispatch a single command",
	Long: `Runs one command through the pipeline and prints the outcome.

Example:
  objectdraw eval create_line -name l1 -coord_1 {0,0} -coord_2 {5,2}`,
	Args: cobra.MinimumNArgs(1),
	// The command text itself uses -flags, so stop cobra from eating them.
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		session := console.NewSession(viz.NewConsoleRenderer(os.Stdout))
		feedback := viz.NewFeedback(os.Stdout)

		ok, msg := session.Eval(strings.Join(args, " "))
		feedback.Print(ok, msg)
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	AddCommand(evalCmd)
}
