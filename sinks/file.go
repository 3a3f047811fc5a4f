package sinks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/willibrandon/mikrolog/core"
	"github.com/willibrandon/mikrolog/selflog"
)

// WriteFileLine writes "<ts> [<LEVEL>]: <msg>\n" to event.UserData, which
// must be an io.Writer, and flushes it if it buffers. It is the callback
// behind Logger.RegisterFile; the registry does not own the writer.
func WriteFileLine(event *core.LogEvent) {
	w, ok := event.UserData.(io.Writer)
	if !ok || w == nil {
		selflog.Printf("[file] sink context %T is not an io.Writer", event.UserData)
		return
	}

	var stack [256]byte
	if err := writeAndFlush(w, AppendFileLine(stack[:0], event)); err != nil {
		selflog.Printf("[file] write failed: %v", err)
	}
}

// WriterSink writes file-format lines to an io.Writer under its own lock.
type WriterSink struct {
	output io.Writer
	mu     sync.Mutex
	buf    []byte
}

// NewWriterSink creates a writer sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{output: w, buf: make([]byte, 0, 256)}
}

// Emit writes the log event to the writer.
func (ws *WriterSink) Emit(event *core.LogEvent) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.buf = AppendFileLine(ws.buf[:0], event)
	if err := writeAndFlush(ws.output, ws.buf); err != nil {
		selflog.Printf("[writer] write failed: %v", err)
	}
}

// FileSink owns a log file. The file is created, or truncated if it exists,
// when the sink is opened.
type FileSink struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	buf    []byte
	isOpen bool
}

// NewFileSink creates the file at path, including missing directories, and
// returns a sink writing to it.
func NewFileSink(path string) (*FileSink, error) {
	fs := &FileSink{path: path, buf: make([]byte, 0, 256)}
	if err := fs.open(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileSink) open() error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fs.file = file
	fs.isOpen = true
	return nil
}

// Path returns the file path.
func (fs *FileSink) Path() string {
	return fs.path
}

// Writer returns the underlying file, for registering it with
// Logger.RegisterFile.
func (fs *FileSink) Writer() io.Writer {
	return fs
}

// Write appends raw bytes to the file. Writes after Close are dropped.
func (fs *FileSink) Write(p []byte) (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return 0, os.ErrClosed
	}
	return fs.file.Write(p)
}

// Emit writes the log event to the file.
func (fs *FileSink) Emit(event *core.LogEvent) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return
	}

	fs.buf = AppendFileLine(fs.buf[:0], event)
	if _, err := fs.file.Write(fs.buf); err != nil {
		selflog.Printf("[file] write failed: %v (path=%s)", err, fs.path)
	}
}

// Close flushes and closes the file.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return nil
	}
	fs.isOpen = false

	if err := fs.file.Sync(); err != nil {
		fs.file.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}
