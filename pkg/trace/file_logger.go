package trace

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileStats counts what a FileLogger has written.
type FileStats struct {
	// Inbound is the number of upstream notifications written.
	Inbound int
	// Outbound is the number of merged emissions written.
	Outbound int
	// Dropped is the number of events that could not be written, including
	// events logged after Close.
	Dropped int
}

// Total returns the number of events written.
func (s FileStats) Total() int {
	return s.Inbound + s.Outbound
}

// FileLogger appends trace events to a .mtrace file.
//
// Events are buffered and reach the file on Flush or Close. The first write
// error is kept and reported by Err and Close; events after it are counted as
// dropped. FileLogger is safe for concurrent use.
type FileLogger struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	buf    *bufio.Writer
	enc    *cbor.Encoder
	stats  FileStats
	err    error
	closed bool
}

// NewFileLogger opens path for appending, creating it with mode 0644 if needed.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	return &FileLogger{
		path: path,
		file: f,
		buf:  buf,
		enc:  NewEncoder(buf),
	}, nil
}

// Path returns the trace file path.
func (l *FileLogger) Path() string {
	return l.path
}

// Log buffers an event for the trace file. Failures never reach the caller;
// they show up in Stats and Err.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.err != nil {
		l.stats.Dropped++
		return
	}
	if err := l.enc.Encode(event); err != nil {
		l.err = fmt.Errorf("trace %s: encode %s event for %q: %w", l.path, event.Direction, event.Key, err)
		l.stats.Dropped++
		return
	}

	if event.Direction == DirectionOut {
		l.stats.Outbound++
	} else {
		l.stats.Inbound++
	}
}

// Flush writes buffered events to the file.
func (l *FileLogger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return l.err
	}
	l.flushLocked()
	return l.err
}

func (l *FileLogger) flushLocked() {
	if err := l.buf.Flush(); err != nil && l.err == nil {
		l.err = fmt.Errorf("trace %s: flush: %w", l.path, err)
	}
}

// Stats returns the event counts so far.
func (l *FileLogger) Stats() FileStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Err returns the first write error, if any.
func (l *FileLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close flushes and closes the trace file. Later Log calls count as dropped.
// Close may be called more than once; it returns the first write error.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return l.err
	}
	l.closed = true

	l.flushLocked()
	if err := l.file.Close(); err != nil {
		l.err = errors.Join(l.err, err)
	}
	return l.err
}

var _ Logger = (*FileLogger)(nil)
