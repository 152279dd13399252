package journalapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/campusworks/journals/internal/config"
)

// Module exposes the journals client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.JournalsURL, p.Logger)
}
