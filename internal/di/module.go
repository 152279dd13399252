package di

import (
	"go.uber.org/fx"

	"github.com/campusworks/journals/internal/adapter/courseware"
	"github.com/campusworks/journals/internal/adapter/discovery"
	"github.com/campusworks/journals/internal/adapter/ecommerce"
	"github.com/campusworks/journals/internal/adapter/journalapi"
	"github.com/campusworks/journals/internal/app"
	"github.com/campusworks/journals/internal/cache"
	"github.com/campusworks/journals/internal/config"
	"github.com/campusworks/journals/internal/logger"
	"github.com/campusworks/journals/internal/pkg/auth"
	"github.com/campusworks/journals/internal/server/http/handlers"
	"github.com/campusworks/journals/internal/server/http/router"
	"github.com/campusworks/journals/internal/storage/postgres"
	"github.com/campusworks/journals/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		discovery.Module,
		journalapi.Module,
		ecommerce.Module,
		courseware.Module,
		usecase.Module,
		fx.Provide(func(facade *app.JournalsFacade) handlers.JournalsFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
