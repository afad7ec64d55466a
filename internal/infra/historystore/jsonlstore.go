package historystore

import (
	"bufio"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

const defaultFile = ".unitconv/history.jsonl"

// JSONLStore appends one JSON object per evaluated line.
type JSONLStore struct {
	path      string
	sessionID string
	now       func() time.Time

	mu sync.Mutex
}

type Option func(*JSONLStore)

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(s *JSONLStore) {
		if strings.TrimSpace(id) != "" {
			s.sessionID = id
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONLStore) { s.now = now }
}

// NewJSONLStore resolves cfg.History.File against root when it is relative.
func NewJSONLStore(root string, cfg domain.Config, opts ...Option) *JSONLStore {
	file := strings.TrimSpace(cfg.History.File)
	if file == "" {
		file = defaultFile
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(root, file)
	}

	s := &JSONLStore{
		path:      filepath.Clean(file),
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.HistoryStore = (*JSONLStore)(nil)

func (s *JSONLStore) Path() string { return s.path }

func (s *JSONLStore) SessionID() string { return s.sessionID }

func (s *JSONLStore) Append(input string, res domain.ConversionResult) error {
	entry := toEntry(s.sessionID, s.now().UTC(), input, res)

	line, err := json.Marshal(entry)
	if err != nil {
		return &domain.OpError{
			Op:   "historystore.marshal",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "historystore.mkdir",
			Kind: domain.KindExecution,
			Path: filepath.Dir(s.path),
			Err:  err,
		}
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return &domain.OpError{
			Op:   "historystore.open",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return &domain.OpError{
			Op:   "historystore.write",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

// Recent returns up to limit entries, oldest first. limit <= 0 returns all.
// A missing file yields no entries. Lines that do not decode are skipped.
func (s *JSONLStore) Recent(limit int) ([]domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "historystore.open",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	defer f.Close()

	var out []domain.HistoryEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		b := sc.Bytes()
		if len(strings.TrimSpace(string(b))) == 0 {
			continue
		}
		var e domain.HistoryEntry
		if err := json.Unmarshal(b, &e); err != nil {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) > limit {
			out = out[1:]
		}
	}
	if err := sc.Err(); err != nil {
		return out, &domain.OpError{
			Op:   "historystore.read",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return out, nil
}

func toEntry(sessionID string, at time.Time, input string, res domain.ConversionResult) domain.HistoryEntry {
	e := domain.HistoryEntry{
		SessionID: sessionID,
		At:        at,
		Input:     input,
		Kind:      res.Kind,
		Message:   res.Message,
	}
	if res.Kind == domain.KindParse {
		return e
	}

	q := res.Request.Quantity
	e.Quantity = &q
	if res.From != nil {
		e.From = res.From.Symbol
	}
	if res.To != nil {
		e.To = res.To.Symbol
	}
	// JSON has no encoding for overflowed results; Message still carries them.
	if res.OK() && !math.IsInf(res.Converted, 0) && !math.IsNaN(res.Converted) {
		c := res.Converted
		e.Converted = &c
	}
	return e
}
