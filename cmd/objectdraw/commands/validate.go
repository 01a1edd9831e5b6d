package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/objectdraw/objectdraw/console"
	"github.com/objectdraw/objectdraw/parser"
)

var validateCmd = &cobra.Command{
	Use:   "validate <script_file...>",
	Short: "Parse-check script files without executing them",
	Long: `Parses every command line of the given script files and reports syntax
errors with their line numbers. Nothing is executed, so semantic failures
(duplicate names, degenerate geometry) are not detected here.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			if !validateFile(path) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func validateFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("%s: cannot open: %v\n", path, err)
		return false
	}
	defer f.Close()

	errorCount := 0
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		raw := strings.TrimSpace(scanner.Text())
		if console.IsBlank(raw) {
			continue
		}
		if _, err := parser.Parse(raw); err != nil {
			errorCount++
			fmt.Printf("%s:%d: %s\n", path, lineNo, err.Error())
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf("%s: read failed: %v\n", path, err)
		return false
	}

	if errorCount == 0 {
		fmt.Printf("%s: OK\n", path)
		return true
	}
	fmt.Printf("%s: %d syntax error(s)\n", path, errorCount)
	return false
}

func init() {
	AddCommand(validateCmd)
}
