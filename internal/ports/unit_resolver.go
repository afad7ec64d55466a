package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// UnitResolver maps a user token to a unit definition.
type UnitResolver interface {
	Resolve(token string) (domain.Unit, bool)
}
