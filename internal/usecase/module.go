package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/qdryclean/qadmin/internal/adapter/backend"
	"github.com/qdryclean/qadmin/internal/config"
)

// Module provides core use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewUserUseCase,
	newOrderUseCase,
)

type orderParams struct {
	fx.In

	Client backend.Client
	Config *config.Config
	Logger *slog.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Client, p.Config.PageSize, p.Logger)
}
