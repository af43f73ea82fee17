package impl

import (
	"io"
	"log/slog"
	"time"

	"payroll/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		TokenSecret:  "test-secret",
		TokenTTL:     48 * time.Hour,
		BcryptCost:   10,
		StoreTimeout: time.Second,
	}

	return cfg
}
