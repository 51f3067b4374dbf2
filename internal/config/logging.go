package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hhkbp2/go-logging"
)

// LoggerName is the name every package logs under
const LoggerName = "truewind"

// LogFormat is the record layout shared by every handler
const LogFormat = "%(asctime)s %(levelname)s %(name)s: %(message)s"

const logDateFormat = "%Y-%m-%d %H:%M:%S"

// ParseLevel normalizes a log level name
func ParseLevel(s string) (string, error) {
	level := strings.ToUpper(strings.TrimSpace(s))
	switch level {
	case "DEBUG", "INFO", "WARN", "ERROR", "CRITICAL":
		return level, nil
	}
	return "", fmt.Errorf("unknown log level %q", s)
}

// writerStream adapts an io.Writer to a logging stream
type writerStream struct {
	w io.Writer
}

func (s *writerStream) Tell() (int64, error) { return 0, nil }
func (s *writerStream) Flush() error         { return nil }
func (s *writerStream) Close() error         { return nil }

func (s *writerStream) Write(msg string) error {
	_, err := io.WriteString(s.w, msg)
	return err
}

// NewWriterHandler returns a handler writing formatted records to w
func NewWriterHandler(w io.Writer) logging.Handler {
	h := logging.NewStreamHandler("writer", logging.LevelNotset, &writerStream{w: w})
	h.SetFormatter(logging.NewStandardFormatter(LogFormat, logDateFormat))
	return h
}

// NewFileHandler returns a handler appending formatted records to path.
// Missing parent directories are created.
func NewFileHandler(path string) (logging.Handler, error) {
	h, err := logging.NewFileHandler(path, os.O_APPEND, 0)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	h.SetFormatter(logging.NewStandardFormatter(LogFormat, logDateFormat))
	return h, nil
}

// SetupLogging applies a level to the application logger and routes its
// records to handler. Handlers installed by an earlier call are closed.
func SetupLogging(level string, handler logging.Handler) error {
	level, err := ParseLevel(level)
	if err != nil {
		return err
	}

	logger := logging.GetLogger(LoggerName)
	switch level {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}

	for _, h := range logger.GetHandlers() {
		logger.RemoveHandler(h)
		h.Close()
	}
	if handler != nil {
		logger.AddHandler(handler)
	}
	return nil
}
