package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the sandbox log file, relative to the working
// directory (project root when run via go run ./cmd/sandbox).
const LogFilePath = "logs/sandbox.txt"

// Logger appends timestamped lines to a file on disk. Write failures are
// dropped so logging never interrupts the frame loop.
type Logger struct {
	mu sync.Mutex
}

// New returns a new Logger and ensures the logs directory exists.
func New() *Logger {
	_ = os.MkdirAll(filepath.Dir(LogFilePath), 0755)
	return &Logger{}
}

// Log appends a line to the log file. Each entry is prefixed with
// [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}
