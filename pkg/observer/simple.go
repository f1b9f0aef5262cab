package observer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Define colored labels using fatih/color.
var (
	infoColor  = color.New(color.FgGreen).SprintFunc()
	debugColor = color.New(color.FgCyan).SprintFunc()
	traceColor = color.New(color.FgYellow).SprintFunc()
	errorColor = color.New(color.FgRed).SprintFunc()
)

// SimpleLogSink implements logr.LogSink for human-readable, level-colored
// output; attach it through fwsi.WithLogger(NewSimpleLogger(...)).
type SimpleLogSink struct {
	writer       io.Writer
	minVerbosity int
	name         string
	keyValues    []interface{}
	mutex        sync.Mutex
	useColor     bool
}

// NewSimpleLogSink creates a SimpleLogSink. If writer is nil it defaults to
// os.Stdout, wrapped through go-colorable so ANSI color codes render on
// Windows consoles. In that case color is used only when useColor is set
// and stdout is a terminal (checked via go-isatty); with a caller-supplied
// writer, useColor is used as given.
func NewSimpleLogSink(writer io.Writer, minVerbosity int, useColor bool) *SimpleLogSink {
	if writer == nil {
		writer = colorable.NewColorable(os.Stdout)
		if f, ok := writer.(*os.File); ok {
			useColor = useColor && isatty.IsTerminal(f.Fd())
		}
	}
	return &SimpleLogSink{
		writer:       writer,
		minVerbosity: minVerbosity,
		useColor:     useColor,
	}
}

func (s *SimpleLogSink) Init(info logr.RuntimeInfo) {}

func (s *SimpleLogSink) Enabled(level int) bool {
	return level <= s.minVerbosity
}

func (s *SimpleLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if !s.Enabled(level) {
		return
	}
	s.log(false, level, msg, keysAndValues...)
}

func (s *SimpleLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	all := append(append([]interface{}{}, keysAndValues...), "error", err)
	s.log(true, 0, msg, all...)
}

func (s *SimpleLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	newKeyValues := append(append([]interface{}{}, s.keyValues...), keysAndValues...)
	return &SimpleLogSink{writer: s.writer, minVerbosity: s.minVerbosity, name: s.name, keyValues: newKeyValues, useColor: s.useColor}
}

func (s *SimpleLogSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = fmt.Sprintf("%s.%s", s.name, name)
	}
	return &SimpleLogSink{writer: s.writer, minVerbosity: s.minVerbosity, name: newName, keyValues: append([]interface{}{}, s.keyValues...), useColor: s.useColor}
}

func (s *SimpleLogSink) V(level int) logr.LogSink {
	return &SimpleLogSink{writer: s.writer, minVerbosity: s.minVerbosity, name: s.name, keyValues: append([]interface{}{}, s.keyValues...), useColor: s.useColor}
}

func (s *SimpleLogSink) log(isError bool, level int, msg string, keysAndValues ...interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var label string
	if isError {
		label = s.paint(errorColor, "[ERROR]")
	} else {
		switch level {
		case LevelInfo:
			label = s.paint(infoColor, "[INFO]")
		case LevelDebug:
			label = s.paint(debugColor, "[DEBUG]")
		case LevelTrace:
			label = s.paint(traceColor, "[TRACE]")
		default:
			label = fmt.Sprintf("[LEVEL %d]", level)
		}
	}

	fullMsg := msg
	if s.name != "" {
		fullMsg = fmt.Sprintf("[%s] %s", s.name, msg)
	}
	fmt.Fprintf(s.writer, "%s %s\n", label, fullMsg)

	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("key%d", i/2)
		}
		fmt.Fprintf(s.writer, "  %s: %v\n", key, keysAndValues[i+1])
	}
}

func (s *SimpleLogSink) paint(f func(a ...interface{}) string, label string) string {
	if !s.useColor {
		return label
	}
	return f(label)
}

// NewSimpleLogger builds a logr.Logger backed by a SimpleLogSink.
func NewSimpleLogger(writer io.Writer, minVerbosity int, useColor bool) logr.Logger {
	return logr.New(NewSimpleLogSink(writer, minVerbosity, useColor))
}
