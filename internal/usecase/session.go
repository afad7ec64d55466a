package usecase

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

// MaxLineLength bounds a single input line. Longer lines are answered with
// a parse error and skipped.
const MaxLineLength = 64 * 1024

// Session is the line-oriented driver around an Engine.
type Session struct {
	engine  *Engine
	in      io.Reader
	out     io.Writer
	prompt  string
	history ports.HistoryStore
	log     *slog.Logger
}

type SessionOption func(*Session)

func WithPrompt(p string) SessionOption {
	return func(s *Session) {
		if p != "" {
			s.prompt = p
		}
	}
}

// WithHistory records every evaluated line. A nil store disables history.
func WithHistory(h ports.HistoryStore) SessionOption {
	return func(s *Session) { s.history = h }
}

func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// SessionStats summarizes a finished session.
type SessionStats struct {
	Lines     int
	Converted int
	Failed    int
	Exited    bool
}

func NewSession(engine *Engine, in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		engine: engine,
		in:     in,
		out:    out,
		prompt: domain.DefaultPrompt,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prompts, reads and answers lines until the exit sentinel, end of input
// or ctx cancellation (checked between lines).
func (s *Session) Run(ctx context.Context) (SessionStats, error) {
	var stats SessionStats
	r := bufio.NewReader(s.in)

	s.log.Info("session.start", "prompt", s.prompt, "history", s.history != nil)
	defer func() {
		s.log.Info("session.end",
			"lines", stats.Lines,
			"converted", stats.Converted,
			"failed", stats.Failed,
			"exited", stats.Exited,
		)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if _, err := fmt.Fprintln(s.out, s.prompt); err != nil {
			return stats, err
		}
		line, tooLong, err := readLine(r, MaxLineLength)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, err
		}

		if IsExit(line) {
			stats.Exited = true
			return stats, nil
		}

		var res domain.ConversionResult
		if tooLong {
			s.log.Warn("session.line.too_long", "limit", MaxLineLength)
			res = parseFailure()
		} else {
			res = s.engine.Evaluate(line)
		}

		stats.Lines++
		if res.OK() {
			stats.Converted++
		} else {
			stats.Failed++
		}
		s.log.Debug("session.line", "input", line, "kind", string(res.Kind))

		if _, err := fmt.Fprintln(s.out, res.Message); err != nil {
			return stats, err
		}

		if s.history != nil && !tooLong {
			if err := s.history.Append(line, res); err != nil {
				s.log.Warn("history.append.failed", "err", err)
			}
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// limit bytes is consumed up to its newline and reported as tooLong with an
// empty text. io.EOF is only returned when no bytes were left.
func readLine(r *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, rerr := r.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(bytes.TrimRight(buf, "\r\n")) > limit {
				tooLong = true
				buf = nil
			}
		}

		switch {
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF):
			if !read {
				return "", false, io.EOF
			}
		case rerr != nil:
			return "", false, rerr
		}
		return string(bytes.TrimRight(buf, "\r\n")), tooLong, nil
	}
}
