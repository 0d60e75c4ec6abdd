// Package logger provides the leveled logger used by the huffman command.
package logger

import (
	"io"
	"log"
)

// Logger writes leveled progress and error messages.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger writing to w.  Infof is discarded unless verbose is
// set; Errorf is always written.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huffman: ", 0), verbose: verbose}
}

func (l *stdLogger) Infof(format string, v ...interface{}) {
	if l.verbose {
		l.l.Printf("[INFO] "+format, v...)
	}
}

func (l *stdLogger) Errorf(format string, v ...interface{}) {
	l.l.Printf("[ERROR] "+format, v...)
}
