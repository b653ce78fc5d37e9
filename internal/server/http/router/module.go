package router

import (
	"go.uber.org/fx"

	"github.com/qdryclean/qadmin/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	middleware.NewNavigator,
	Setup,
)
