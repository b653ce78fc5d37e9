package session

import (
	"go.uber.org/fx"

	"github.com/qdryclean/qadmin/internal/config"
)

// Module wires the durable session store and the invalidation signal.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(NewInvalidation),
)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) (Store, error) {
	return NewFileStore(p.Config.SessionFile)
}
