package logging

import (
	"go.uber.org/zap"
)

// Init builds the process logger and installs it as the zap global, so
// packages can log through zap.L().
func Init(debug bool) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
