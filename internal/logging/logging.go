// Package logging keeps diagnostics out of the terminal the TUI owns.
// Errors always land in the log file; trace entries are JSON lines and are
// written only when tracing was switched on at setup.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultPath = "rdct.log"

// sink serialises appends to the log file. The file is opened per write so
// an external rotation or removal never wedges the program.
type sink struct {
	mu      sync.Mutex
	path    string
	tracing bool
}

var shared = sink{path: defaultPath}

// Setup points the shared sink at path and fixes the tracing switch. An
// empty path keeps the default file in the working directory; missing
// parent directories are created.
func Setup(path string, trace bool) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.tracing = trace
	path = strings.TrimSpace(path)
	if path == "" {
		shared.path = defaultPath
		return
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "log directory: %v\n", err)
			shared.path = defaultPath
			return
		}
	}
	shared.path = path
}

// Error records err in the log file. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	shared.append(fmt.Sprintf("%s ERROR %v\n", time.Now().UTC().Format(time.RFC3339), err))
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace records a structured event as one JSON line when tracing is on.
func Trace(event string, payload interface{}) {
	shared.mu.Lock()
	enabled := shared.tracing
	shared.mu.Unlock()
	if !enabled {
		return
	}
	line, err := json.Marshal(traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload})
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding: %v\n", err)
		return
	}
	shared.append(string(line) + "\n")
}

func (s *sink) append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
	}
}
