package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// lineFormatter renders an entry as its bare message, matching the file contents.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(e.Message + "\n"), nil
}

// newConsoleLogger returns the logger that mirrors event lines to stdout.
// It follows the global level, so --log warn silences the mirror.
func newConsoleLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(lineFormatter{})
	l.SetLevel(logrus.GetLevel())
	return l
}

// FileSink writes the simulation event log to a text file and mirrors
// every non-empty line to the console at Info level.
type FileSink struct {
	f       *os.File
	w       *bufio.Writer
	console *logrus.Logger
	err     error // first write error; later writes are dropped
}

// NewFileSink creates (or truncates) the file at path.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output file: %w", err)
	}
	return &FileSink{f: f, w: bufio.NewWriter(f), console: newConsoleLogger()}, nil
}

// Write appends line and a newline to the file.
func (s *FileSink) Write(line string) {
	if line != "" {
		s.console.Info(line)
	}
	if s.err != nil {
		return
	}
	if _, err := s.w.WriteString(line + "\n"); err != nil {
		s.err = err
	}
}

// Close flushes buffered lines and closes the file.
// Returns the first error seen by Write, Flush or Close.
func (s *FileSink) Close() error {
	flushErr := s.w.Flush()
	closeErr := s.f.Close()
	switch {
	case s.err != nil:
		return fmt.Errorf("writing output file: %w", s.err)
	case flushErr != nil:
		return fmt.Errorf("flushing output file: %w", flushErr)
	case closeErr != nil:
		return fmt.Errorf("closing output file: %w", closeErr)
	}
	return nil
}
