package usecase

import (
	"fmt"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

const unknownUnitName = "???"

type Converter struct {
	units ports.UnitResolver
}

func NewConverter(units ports.UnitResolver) *Converter {
	return &Converter{units: units}
}

// Convert evaluates a parsed request. Domain failures are reported through
// the result's Kind and Message, never as an error.
func (c *Converter) Convert(req domain.ConversionRequest) domain.ConversionResult {
	res := domain.ConversionResult{Request: req}

	from, fromOK := c.units.Resolve(req.FromToken)
	to, toOK := c.units.Resolve(req.ToToken)
	if fromOK {
		res.From = &from
	}
	if toOK {
		res.To = &to
	}

	if !fromOK || !toOK || from.Family != to.Family {
		res.Kind = domain.KindFamilyMismatch
		if !fromOK || !toOK {
			res.Kind = domain.KindUnknownUnit
		}
		res.Message = fmt.Sprintf("Conversion from %s to %s is impossible", pluralOrUnknown(res.From), pluralOrUnknown(res.To))
		return res
	}

	q := req.Quantity
	switch {
	case from.Same(to):
		res.Converted = q
	case from.Family == domain.FamilyTemperature:
		res.Converted = convertTemperature(q, from.Symbol, to.Symbol)
	default:
		if q < 0 {
			res.Kind = domain.KindNegativeMagnitude
			res.Message = negativeMessage(from.Family)
			return res
		}
		res.Converted = q * from.Scale / to.Scale
	}

	res.Message = render(q, from, res.Converted, to)
	return res
}

func render(q float64, from domain.Unit, converted float64, to domain.Unit) string {
	return fmt.Sprintf("%s %s is %s %s",
		FormatNumber(q), from.Name(q),
		FormatNumber(converted), to.Name(converted),
	)
}

func pluralOrUnknown(u *domain.Unit) string {
	if u == nil {
		return unknownUnitName
	}
	return u.Plural
}

func negativeMessage(f domain.Family) string {
	if f == domain.FamilyLength {
		return "Length shouldn't be negative."
	}
	return "Weight shouldn't be negative."
}

// convertTemperature expects from != to; the last branch of each source is
// the remaining destination.
func convertTemperature(v float64, from, to string) float64 {
	switch from {
	case "c":
		if to == "k" {
			return v + 273.15
		}
		return v*9/5 + 32
	case "f":
		if to == "c" {
			return (v - 32) * 5 / 9
		}
		return (v + 459.67) * 5 / 9
	default:
		if to == "c" {
			return v - 273.15
		}
		return v*9/5 - 459.67
	}
}
