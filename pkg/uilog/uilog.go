// Package uilog is uicore's process-wide diagnostic logger. Grounded in
// pkg/logger/logger.go's package-level *log.Logger-over-*os.File shape,
// extended with a subsystem tag on every line ([uidriver], [externapi],
// [registry]) instead of just a severity tag.
package uilog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	globalLogger *log.Logger
	logFile      *os.File
	mu           sync.Mutex
)

// Init initializes the global logger to append to the file at logPath.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //#nosec G304 -- caller-provided log path
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	globalLogger = log.New(f, "", log.Ltime|log.Lmicroseconds)
	return nil
}

// Close closes the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	globalLogger = nil
}

// Info logs an info-level message tagged with subsystem.
func Info(subsystem, format string, v ...interface{}) {
	write("INFO", subsystem, format, v...)
}

// Debug logs a debug-level message tagged with subsystem.
func Debug(subsystem, format string, v ...interface{}) {
	write("DEBUG", subsystem, format, v...)
}

// Warn logs a warning-level message tagged with subsystem.
func Warn(subsystem, format string, v ...interface{}) {
	write("WARN", subsystem, format, v...)
}

// Error logs an error-level message tagged with subsystem.
func Error(subsystem, format string, v ...interface{}) {
	write("ERROR", subsystem, format, v...)
}

func write(level, subsystem, format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		return
	}
	globalLogger.Printf("[%s][%s] "+format, append([]interface{}{level, subsystem}, v...)...)
}

// GetWriter returns the underlying writer, or io.Discard if no log file is
// open, so callers (UiDriver, externapi.Server) can build their own injected
// *log.Logger over the same sink.
func GetWriter() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		return logFile
	}
	return io.Discard
}
