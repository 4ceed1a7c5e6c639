package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	ServiceName string
	Development bool
}

var global *zap.Logger = zap.NewNop()

// Init builds the global logger. Development mode uses the console encoder
// with colored levels; production emits JSON.
func Init(cfg *Config) error {
	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	log, err := zapCfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return err
	}

	global = log.With(zap.String("service", cfg.ServiceName))
	return nil
}

// Get returns the global logger
func Get() *zap.Logger {
	return global
}

// Sync flushes buffered log entries
func Sync() {
	_ = global.Sync()
}
