package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/objectdraw/objectdraw/console"
	"github.com/objectdraw/objectdraw/runtime"
	"github.com/objectdraw/objectdraw/viz"
)

var runSVGPath string

var runCmd = &cobra.Command{
	Use:   "run <script_file>",
	Short: "Execute a command script",
	Long: `Runs every command line of a script file through the pipeline, in file
order. Lines that fail are reported but do not stop the run; the exit status
is 1 if any line failed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svg := viz.NewSVGRenderer()
		renderer := runtime.MultiRenderer{viz.NewConsoleRenderer(os.Stdout), svg}
		session := console.NewSession(renderer)
		feedback := viz.NewFeedback(os.Stdout)

		ok, msg := session.RunScript(args[0])
		feedback.Print(ok, msg)

		if runSVGPath != "" {
			if err := writeScene(svg, runSVGPath); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("Scene written to %s\n", runSVGPath)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

// writeScene dumps the buffered SVG scene to a file.
func writeScene(svg *viz.SVGRenderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write scene to '%s': %w", path, err)
	}
	defer f.Close()
	if _, err := svg.WriteTo(f); err != nil {
		return fmt.Errorf("could not write scene to '%s': %w", path, err)
	}
	return nil
}

func init() {
	runCmd.Flags().StringVar(&runSVGPath, "svg", "", "Write the resulting scene to an SVG file")
	AddCommand(runCmd)
}
