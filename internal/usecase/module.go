package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/campusworks/journals/internal/adapter/ecommerce"
	"github.com/campusworks/journals/internal/adapter/journalapi"
	"github.com/campusworks/journals/internal/cache"
	"github.com/campusworks/journals/internal/config"
	"github.com/campusworks/journals/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newPricingUseCase,
	newAccessUseCase,
	NewBundleUseCase,
)

type pricingParams struct {
	fx.In

	Users  repository.UserRepository
	Shop   ecommerce.Client
	Config *config.Config
	Logger *slog.Logger
}

func newPricingUseCase(p pricingParams) *PricingUseCase {
	return NewPricingUseCase(p.Users, p.Shop, p.Config.ServiceWorkerUsername, p.Logger)
}

type accessParams struct {
	fx.In

	Journals journalapi.Client
	Store    cache.Store
	Config   *config.Config
	Logger   *slog.Logger
}

func newAccessUseCase(p accessParams) *AccessUseCase {
	return NewAccessUseCase(p.Journals, p.Store, p.Config.AccessCacheTTL, p.Logger)
}
