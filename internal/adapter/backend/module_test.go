package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/qdryclean/qadmin/internal/config"
	"github.com/qdryclean/qadmin/internal/logger"
	"github.com/qdryclean/qadmin/internal/session"
)

func TestModuleProvidesClient(t *testing.T) {
	cfg := &config.Config{
		APIBaseURL:     "http://localhost:8080/api/v1",
		RequestTimeout: time.Second,
		SessionFile:    filepath.Join(t.TempDir(), "session.json"),
		LogLevel:       "error",
	}

	var resolved Client
	app := fx.New(
		fx.Provide(func() *config.Config { return cfg }),
		logger.Module,
		session.Module,
		Module,
		fx.Populate(&resolved),
	)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected client to be populated")
	}
}
