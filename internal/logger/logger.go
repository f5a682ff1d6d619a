// Package logger provides the batch processing log.
//
// The pipeline writes one human-readable line per event: file started, file
// skipped, stage failure with its reason, file completed. The sink is an
// interface injected into the orchestrator so tests can capture events
// in memory; the production sink appends to processing.log in the output
// directory and mirrors to stderr. Sinks serialize writes internally, so
// concurrent workers never interleave partial lines.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Log receives per-file pipeline events.
type Log interface {
	// Started records that processing of a file has begun.
	Started(path string)

	// Skipped records a file passed over without processing, with the reason.
	Skipped(path, reason string)

	// Failed records a per-file stage failure with its originating error.
	Failed(path string, err error)

	// Completed records a successfully written output for a file.
	Completed(path, output string)
}

// FileLog appends events to a log file and mirrors them to stderr.
//
// Open it once at batch start and Close it at batch end. The underlying
// log.Logger serializes concurrent writes.
type FileLog struct {
	file *os.File
	out  *log.Logger
}

// LogFileName is the batch log written alongside the outputs.
const LogFileName = "processing.log"

// OpenFile opens (appending) the processing log at the given path.
func OpenFile(path string) (*FileLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &FileLog{
		file: f,
		out:  log.New(io.MultiWriter(f, os.Stderr), "", log.LstdFlags),
	}, nil
}

// Close flushes and closes the log file. The FileLog must not be used after.
func (l *FileLog) Close() error {
	return l.file.Close()
}

func (l *FileLog) Started(path string) {
	l.out.Printf("INFO started %s", path)
}

func (l *FileLog) Skipped(path, reason string) {
	l.out.Printf("WARN skipped %s: %s", path, reason)
}

func (l *FileLog) Failed(path string, err error) {
	l.out.Printf("ERROR failed %s: %v", path, err)
}

func (l *FileLog) Completed(path, output string) {
	l.out.Printf("INFO completed %s -> %s", path, output)
}

// Memory is an in-memory sink for tests. Safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	lines []string
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Lines returns a copy of the recorded event lines in arrival order.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *Memory) record(line string) {
	m.mu.Lock()
	m.lines = append(m.lines, line)
	m.mu.Unlock()
}

func (m *Memory) Started(path string) {
	m.record(fmt.Sprintf("started %s", path))
}

func (m *Memory) Skipped(path, reason string) {
	m.record(fmt.Sprintf("skipped %s: %s", path, reason))
}

func (m *Memory) Failed(path string, err error) {
	m.record(fmt.Sprintf("failed %s: %v", path, err))
}

func (m *Memory) Completed(path, output string) {
	m.record(fmt.Sprintf("completed %s -> %s", path, output))
}
