// Package log provides the process-wide debug sink. Output is buffered
// in memory until a destination is chosen, so messages emitted before
// flag parsing are not lost; an empty destination discards everything.
package log

import (
	"log"
	"os"
	"sync"
)

// EnvVar names the environment variable that selects a debug log file
// when no --debug-log flag is given.
const EnvVar = "LSG_DEBUG_LOG"

// debugSink buffers or writes debug output. It implements io.Writer so
// the standard log.Logger handles formatting.
type debugSink struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	sink      = &debugSink{}
	stdLogger = log.New(sink, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer. It writes to the file when one is set and
// buffers otherwise.
func (s *debugSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discard {
		return len(p), nil
	}
	if s.file != nil {
		n, err := s.file.Write(p)
		_ = s.file.Sync()
		return n, err
	}

	b := make([]byte, len(p))
	copy(b, p)
	s.buffer = append(s.buffer, b...)
	return len(p), nil
}

// SetFile selects the debug log file and flushes anything buffered so
// far into it. An empty path discards buffered and future messages.
func SetFile(path string) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file != nil {
		_ = sink.file.Close()
		sink.file = nil
	}

	if path == "" {
		sink.discard = true
		sink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		sink.discard = true
		sink.buffer = nil
		return err
	}

	sink.file = f
	sink.discard = false

	if len(sink.buffer) > 0 {
		_, _ = f.Write(sink.buffer)
		_ = f.Sync()
		sink.buffer = nil
	}
	return nil
}

// InitFromEnv configures the sink from EnvVar. It runs once at startup;
// a --debug-log flag value, when present, wins over the environment.
// With the variable unset the sink keeps buffering so a later SetFile
// still sees early messages.
func InitFromEnv() {
	if path := os.Getenv(EnvVar); path != "" {
		_ = SetFile(path)
	}
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if one is open.
func Close() error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file == nil {
		return nil
	}
	err := sink.file.Close()
	sink.file = nil
	return err
}
