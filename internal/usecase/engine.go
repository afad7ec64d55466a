package usecase

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

// ParseErrorMessage is returned for lines that do not parse.
const ParseErrorMessage = "Parse error"

// Engine combines parsing, conversion and rendering of a single line.
// It holds no mutable state and can be shared between goroutines.
type Engine struct {
	converter *Converter
	log       *slog.Logger
}

type EngineOption func(*Engine)

func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEngine(units ports.UnitResolver, opts ...EngineOption) *Engine {
	e := &Engine{
		converter: NewConverter(units),
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate parses and converts one line. Parse failures yield a result with
// KindParse and ParseErrorMessage.
func (e *Engine) Evaluate(line string) domain.ConversionResult {
	req, err := Parse(line)
	if err != nil {
		e.log.Debug("convert.failed", "kind", string(domain.KindParse), "err", err)
		return parseFailure()
	}

	res := e.converter.Convert(req)
	if !res.OK() {
		e.log.Debug("convert.failed",
			"kind", string(res.Kind),
			"from", req.FromToken,
			"to", req.ToToken,
		)
	}
	return res
}

// ConvertLine returns the sentence to show for line: either the conversion
// or a description of why it could not be done.
func (e *Engine) ConvertLine(line string) string {
	return e.Evaluate(line).Message
}

func parseFailure() domain.ConversionResult {
	return domain.ConversionResult{
		Kind:    domain.KindParse,
		Message: ParseErrorMessage,
	}
}
