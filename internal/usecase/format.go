package usecase

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a quantity for user-facing sentences.
//
// Integral values keep one decimal ("5.0"). Magnitudes in [1e-3, 1e7) use the
// shortest decimal that round-trips; anything else uses an "E" exponent
// ("1.0E7", "2.5E-4").
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return withFraction(mant) + "E" + strconv.Itoa(e)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
