package courseware

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/campusworks/journals/internal/config"
)

// Module exposes the courseware renderer implementation to the fx graph.
var Module = fx.Provide(newRenderer)

type rendererParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newRenderer(p rendererParams) (Renderer, error) {
	return NewHTTPClient(p.Config.LMSURL, p.Logger)
}
