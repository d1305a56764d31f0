//go:build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/cory-johannsen/route1/internal/config"
)

// Initialize assembles an App from cfg.
func Initialize(cfg config.Config) (*App, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
