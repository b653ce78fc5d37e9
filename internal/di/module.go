package di

import (
	"go.uber.org/fx"

	"github.com/qdryclean/qadmin/internal/adapter/backend"
	"github.com/qdryclean/qadmin/internal/app"
	"github.com/qdryclean/qadmin/internal/config"
	"github.com/qdryclean/qadmin/internal/logger"
	"github.com/qdryclean/qadmin/internal/server/http/handlers"
	"github.com/qdryclean/qadmin/internal/server/http/router"
	"github.com/qdryclean/qadmin/internal/session"
	"github.com/qdryclean/qadmin/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		backend.Module,
		usecase.Module,
		fx.Provide(func(facade *app.AdminFacade) handlers.AdminFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
