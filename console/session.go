// Package console provides a stateful, interactive environment around the
// command pipeline. A Session is the engine behind both the REPL and the
// one-shot CLI commands: it owns a registry for the lifetime of the run and
// feeds every input line through parse and dispatch.
package console

import (
	"strings"

	"github.com/objectdraw/objectdraw/parser"
	"github.com/objectdraw/objectdraw/runtime"
)

// Session wires a parser, a dispatcher and a registry into one interactive
// unit. Commands are evaluated one at a time, in submission order.
type Session struct {
	registry   *runtime.Registry
	dispatcher *runtime.Dispatcher
}

// NewSession creates a fresh session drawing on the given renderer. A nil
// renderer keeps the session headless.
func NewSession(renderer runtime.Renderer) *Session {
	registry := runtime.NewRegistry()
	return &Session{
		registry:   registry,
		dispatcher: runtime.NewDispatcher(registry, renderer),
	}
}

// Eval parses and dispatches one line of command text, reporting the outcome
// and a user-facing message. A parse failure never reaches the dispatcher.
func (s *Session) Eval(raw string) (bool, string) {
	cmd, err := parser.Parse(raw)
	if err != nil {
		return false, err.Error()
	}
	return s.dispatcher.Execute(cmd)
}

// RunScript executes a script file through the execute_file pipeline.
func (s *Session) RunScript(path string) (bool, string) {
	return s.dispatcher.Execute(&parser.Command{
		Name: "execute_file",
		Args: map[string]string{"file_path": path},
	})
}

// ObjectNames returns the names of all shapes created so far, sorted, for
// completion of connect arguments.
func (s *Session) ObjectNames() []string {
	return s.registry.Names()
}

// ObjectCount returns the number of shapes created so far.
func (s *Session) ObjectCount() int {
	return s.registry.Len()
}

// CommandNames lists the recognized command keywords.
func CommandNames() []string {
	return []string{
		"create_line",
		"create_triangle",
		"create_rectangle",
		"create_square",
		"connect",
		"execute_file",
	}
}

// IsBlank reports whether a line would be skipped by script execution:
// empty after trimming, or a # comment.
func IsBlank(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
