package ports

import "github.com/aalvaropc/unitconv/internal/domain"

type ConfigInitializer interface {
	Init(root string, force bool) (domain.InitReport, error)
}
