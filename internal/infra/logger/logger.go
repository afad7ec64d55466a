package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileName is the log file written under Dir(root).
const FileName = "unitconv.log"

type Config struct {
	Root  string
	Debug bool
}

type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = discardSink()
)

func discardSink() sink {
	return sink{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// Dir is where unitconv keeps its logs for a config root.
func Dir(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), ".unitconv", "logs")
}

// Setup opens Dir(root)/unitconv.log and makes it the global logger. Until
// Setup succeeds, L() discards everything. The returned func closes the file
// and restores the discarding logger.
func Setup(cfg Config) (func() error, error) {
	dir := Dir(cfg.Root)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		swap(discardSink())
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discardSink())
		return nil, fmt.Errorf("open log file: %w", err)
	}

	s := sink{log: slog.New(newHandler(f, cfg.Debug)), file: f, path: path}
	swap(s)
	s.log.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		if cur.file == f {
			cur = discardSink()
		}
		mu.Unlock()
		return f.Close()
	}, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo, ReplaceAttr: utcTime}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func swap(s sink) {
	mu.Lock()
	cur = s
	mu.Unlock()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// Path is the active log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}
