// Package logging routes the stdlib logger (and Bubble Tea's) to a
// debug file when one is requested, and discards everything otherwise
// so the TUI stays clean.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// SetupLogging configures logging. With an empty filename logging is
// disabled (except log.Fatal/panic). With a filename, both stdlib and
// Bubble Tea logs go to that file.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	debugMode = true
	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// IsDebugMode reports whether a debug file is active.
func IsDebugMode() bool { return debugMode }

// Debugf logs only when a debug file is active, keeping hot paths quiet
// otherwise.
func Debugf(format string, args ...any) {
	if !debugMode {
		return
	}
	log.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
}

// Infof logs an informational line.
func Infof(format string, args ...any) {
	log.Output(2, "INFO "+fmt.Sprintf(format, args...))
}

// Warnf logs a warning line.
func Warnf(format string, args ...any) {
	log.Output(2, "WARN "+fmt.Sprintf(format, args...))
}
