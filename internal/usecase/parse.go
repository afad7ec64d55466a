package usecase

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// ExitSentinel ends an interactive session. Matched case-sensitively.
const ExitSentinel = "exit"

// "degree Celsius" / "degrees Fahrenheit" become single tokens.
var reDegreeWord = regexp.MustCompile(`(?i)\b(degrees?)[ \t]+`)

func IsExit(line string) bool {
	return line == ExitSentinel
}

// Parse reads "<number> <unit> <connector> <unit>". The connector is skipped
// positionally and extra trailing words are ignored. Unit tokens are not
// resolved here.
func Parse(line string) (domain.ConversionRequest, error) {
	normalized := reDegreeWord.ReplaceAllString(line, "$1")
	fields := strings.Fields(normalized)
	if len(fields) < 4 {
		return domain.ConversionRequest{}, parseErr(fmt.Errorf("expected 4 fields, got %d: %w", len(fields), domain.ErrParse))
	}

	q, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return domain.ConversionRequest{}, parseErr(fmt.Errorf("quantity %q: %w", fields[0], domain.ErrParse))
	}
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return domain.ConversionRequest{}, parseErr(fmt.Errorf("quantity %q is not finite: %w", fields[0], domain.ErrParse))
	}

	return domain.ConversionRequest{
		Quantity:  q,
		FromToken: fields[1],
		ToToken:   fields[3],
	}, nil
}

func parseErr(err error) error {
	return &domain.OpError{
		Op:   "usecase.parse",
		Kind: domain.KindParse,
		Err:  err,
	}
}
