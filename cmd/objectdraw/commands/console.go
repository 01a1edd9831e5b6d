package commands

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/objectdraw/objectdraw/console"
	"github.com/objectdraw/objectdraw/runtime"
	"github.com/objectdraw/objectdraw/viz"
)

// REPL state shared between the executor, the completer and the exit paths.
var (
	currentSession *console.Session
	sceneSVG       *viz.SVGRenderer
	commandHistory []string
	historyFile    string
	consoleSVGPath string
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive objectdraw console",
	Long: `Start an interactive REPL for the shape command language.

The console provides command history (persisted across sessions), tab
completion of command names, flags and object names, and colored feedback.

Example:
  objectdraw console

Then in the REPL:
  draw> create_line -name l1 -coord_1 {0,0} -coord_2 {5,2}
  draw> create_square -name s1 -coord_1 {1,1} -coord_2 {3,3}
  draw> connect -object_name_1 l1 -object_name_2 s1`,
	Run: func(cmd *cobra.Command, args []string) {
		sceneSVG = viz.NewSVGRenderer()
		renderer := runtime.MultiRenderer{viz.NewConsoleRenderer(os.Stdout), sceneSVG}
		currentSession = console.NewSession(renderer)

		fmt.Println("objectdraw console. Type 'help' for commands, 'exit' or Ctrl+D to quit.")

		initializeHistory()
		setupSignalHandling()

		p := prompt.New(
			executor,
			completer,
			prompt.OptionTitle("objectdraw console"),
			prompt.OptionPrefix("draw> "),
			prompt.OptionHistory(commandHistory),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSelectedSuggestionTextColor(prompt.Black),
			prompt.OptionDescriptionBGColor(prompt.DarkGray),
			prompt.OptionDescriptionTextColor(prompt.White),
			prompt.OptionCompletionWordSeparator(" "),
			prompt.OptionMaxSuggestion(10),
		)
		p.Run()

		shutdown()
	},
}

func executor(line string) {
	if console.IsBlank(line) {
		return
	}
	trimmed := strings.TrimSpace(line)
	commandHistory = append(commandHistory, trimmed)

	switch trimmed {
	case "exit", "quit":
		shutdown()
		os.Exit(0)
	case "help":
		printHelp()
		return
	}

	ok, msg := currentSession.Eval(trimmed)
	viz.NewFeedback(os.Stdout).Print(ok, msg)
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  create_line      -name <n> -coord_1 {x,y} -coord_2 {x,y}")
	fmt.Println("  create_triangle  -name <n> -coord_1 {x,y} -coord_2 {x,y} -coord_3 {x,y}")
	fmt.Println("  create_rectangle -name <n> -coord_1 {x,y} -coord_2 {x,y} [-coord_3 {x,y} -coord_4 {x,y}]")
	fmt.Println("  create_square    -name <n> -coord_1 {x,y} -coord_2 {x,y} [-coord_3 {x,y} -coord_4 {x,y}]")
	fmt.Println("  connect          -object_name_1 <n> -object_name_2 <n>")
	fmt.Println("  execute_file     -file_path <path>")
	fmt.Println("  help | exit | quit")
}

// shutdown saves history and, when requested, exports the scene.
func shutdown() {
	saveHistory()
	if consoleSVGPath != "" && sceneSVG != nil && !sceneSVG.Empty() {
		if err := writeScene(sceneSVG, consoleSVGPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Printf("Scene written to %s\n", consoleSVGPath)
	}
}

func setupSignalHandling() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nSaving history and exiting...")
		shutdown()
		os.Exit(0)
	}()
}

func initializeHistory() {
	historyFile = historyFilePath()
	loadHistory()
}

func historyFilePath() string {
	if path := os.Getenv("OBJECTDRAW_HISTORY"); path != "" {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		return ".objectdraw_history"
	}
	return filepath.Join(usr.HomeDir, ".objectdraw_history")
}

func loadHistory() {
	file, err := os.Open(historyFile)
	if err != nil {
		commandHistory = nil
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			commandHistory = append(commandHistory, line)
		}
	}
}

func saveHistory() {
	if historyFile == "" {
		return
	}

	// Keep at most the last 1000 commands.
	const maxHistory = 1000
	start := 0
	if len(commandHistory) > maxHistory {
		start = len(commandHistory) - maxHistory
	}

	file, err := os.Create(historyFile)
	if err != nil {
		fmt.Printf("Warning: could not save command history: %v\n", err)
		return
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, line := range commandHistory[start:] {
		writer.WriteString(line + "\n")
	}
	writer.Flush()
}

var commandSuggestions = []prompt.Suggest{
	{Text: "create_line", Description: "Create a line from two endpoints"},
	{Text: "create_triangle", Description: "Create a triangle from three vertices"},
	{Text: "create_rectangle", Description: "Create a rectangle from a diagonal or four corners"},
	{Text: "create_square", Description: "Create a square from a diagonal or four vertices"},
	{Text: "connect", Description: "Connect two shapes by their centers"},
	{Text: "execute_file", Description: "Run commands from a script file"},
	{Text: "help", Description: "Show help message"},
	{Text: "exit", Description: "Exit the console"},
	{Text: "quit", Description: "Exit the console"},
}

var flagSuggestions = map[string][]prompt.Suggest{
	"create_line": {
		{Text: "-name", Description: "Shape name"},
		{Text: "-coord_1", Description: "First endpoint {x,y}"},
		{Text: "-coord_2", Description: "Second endpoint {x,y}"},
	},
	"create_triangle": {
		{Text: "-name", Description: "Shape name"},
		{Text: "-coord_1", Description: "First vertex {x,y}"},
		{Text: "-coord_2", Description: "Second vertex {x,y}"},
		{Text: "-coord_3", Description: "Third vertex {x,y}"},
	},
	"create_rectangle": {
		{Text: "-name", Description: "Shape name"},
		{Text: "-coord_1", Description: "Diagonal point or first corner {x,y}"},
		{Text: "-coord_2", Description: "Diagonal point or second corner {x,y}"},
		{Text: "-coord_3", Description: "Third corner {x,y}"},
		{Text: "-coord_4", Description: "Fourth corner {x,y}"},
	},
	"create_square": {
		{Text: "-name", Description: "Shape name"},
		{Text: "-coord_1", Description: "Diagonal point or first vertex {x,y}"},
		{Text: "-coord_2", Description: "Diagonal point or second vertex {x,y}"},
		{Text: "-coord_3", Description: "Third vertex {x,y}"},
		{Text: "-coord_4", Description: "Fourth vertex {x,y}"},
	},
	"connect": {
		{Text: "-object_name_1", Description: "First shape name"},
		{Text: "-object_name_2", Description: "Second shape name"},
	},
	"execute_file": {
		{Text: "-file_path", Description: "Path to a command script"},
	},
}

func completer(d prompt.Document) []prompt.Suggest {
	line := d.CurrentLine()
	word := d.GetWordBeforeCursor()
	args := strings.Fields(line)

	if line == "" {
		return nil
	}

	// First word: complete command names.
	if len(args) <= 1 && !strings.HasSuffix(line, " ") {
		return prompt.FilterHasPrefix(commandSuggestions, word, true)
	}

	command := args[0]

	// After -object_name_N, complete with registered shape names.
	if len(args) >= 2 {
		prev := args[len(args)-1]
		if !strings.HasSuffix(line, " ") {
			// Mid-word: the flag is the token before the one being typed.
			prev = args[len(args)-2]
		}
		if strings.HasPrefix(prev, "-object_name_") && currentSession != nil {
			var names []prompt.Suggest
			for _, name := range currentSession.ObjectNames() {
				names = append(names, prompt.Suggest{Text: name, Description: "shape"})
			}
			return prompt.FilterHasPrefix(names, word, true)
		}
	}

	// Otherwise suggest the command's flags.
	if flags, ok := flagSuggestions[command]; ok && strings.HasPrefix(word, "-") {
		return prompt.FilterHasPrefix(flags, word, true)
	}
	return nil
}

func init() {
	consoleCmd.Flags().StringVar(&consoleSVGPath, "svg", "", "Write the scene to an SVG file on exit")
	AddCommand(consoleCmd)
}
