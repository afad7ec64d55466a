package usecase

import (
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

func (uc *InitConfig) Execute(root string, force bool) (domain.InitReport, error) {
	return uc.initializer.Init(root, force)
}
