package ecommerce

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/campusworks/journals/internal/config"
	pkgAuth "github.com/campusworks/journals/internal/pkg/auth"
)

// Module exposes the e-commerce client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Tokens pkgAuth.Strategy
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.EcommerceAPIURL, p.Config.EcommercePublicURL, p.Tokens, p.Logger)
}
