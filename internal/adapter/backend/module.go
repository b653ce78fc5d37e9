package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/qdryclean/qadmin/internal/config"
	"github.com/qdryclean/qadmin/internal/session"
)

// Module exposes the API client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config      *config.Config
	Sessions    session.Store
	Invalidated *session.Invalidation
	Logger      *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.APIBaseURL, p.Config.RequestTimeout, p.Sessions, p.Invalidated, p.Logger)
}
