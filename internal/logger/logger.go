// Package logger builds the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"

	"github.com/smehra/sayright/internal/config"
)

// New returns a production logger in production, a development logger
// otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
