// Package logger owns the process-wide structured logger. Events are JSON
// lines under <workspace>/.toolbelt/logs and use dotted names such as
// "lcm.calculated".
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	dirName  = ".toolbelt/logs"
	fileName = "toolbelt.log"

	// DefaultMaxSize is the size at which the log is rotated on Setup.
	DefaultMaxSize int64 = 5 << 20
)

// Config selects where the log file lives and how verbose it is.
type Config struct {
	Root  string
	Debug bool
	// MaxSize rotates an existing log to toolbelt.log.1 when exceeded.
	// Zero means DefaultMaxSize; a negative value disables rotation.
	MaxSize int64
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup routes the global logger to <Root>/.toolbelt/logs/toolbelt.log and
// returns a func that closes the file and restores the discarding logger.
// On failure the logger keeps discarding and the error is returned.
func Setup(cfg Config) (func() error, error) {
	root := "."
	if cfg.Root != "" {
		root = filepath.Clean(cfg.Root)
	}

	dir := filepath.Join(root, filepath.FromSlash(dirName))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, fileName)
	if err := rotate(path, cfg.MaxSize); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		if logFile != f {
			return nil
		}
		err := f.Close()
		logFile = nil
		logPath = ""
		global = discard()
		return err
	}, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
			a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
		}
		return a
	}
	return slog.NewJSONHandler(w, opts)
}

// rotate keeps a single previous generation.
func rotate(path string, maxSize int64) error {
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}
	if maxSize < 0 {
		return nil
	}

	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < maxSize {
		return nil
	}
	return os.Rename(path, path+".1")
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	global = discard()
	logFile = nil
	logPath = ""
}

// L returns the global logger. It is safe to call before Setup.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// For tags events with the emitting component ("cli", "tui").
func For(component string) *slog.Logger {
	return L().With("component", component)
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
