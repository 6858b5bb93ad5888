package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/meetsync-team/meetsync/pkg/config"
)

// New builds the application logger. In development it logs to stderr in
// console format; in production it logs JSON, optionally teeing into a
// size-rotated file when LOG_FILE is set.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment != "production" {
		return zap.NewDevelopment()
	}

	if cfg.Log.File == "" {
		return zap.NewProduction()
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	return zap.New(core), nil
}
