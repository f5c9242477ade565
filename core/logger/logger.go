package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. "debug" selects zap's development config
// with ISO8601 timestamps; every other level uses the production config.
func New(cfg *Config) (*zap.Logger, error) {
	zc, err := baseConfig(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	} else {
		zc.Encoding = "json"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"
	zc.EncoderConfig.NameKey = "component"

	if cfg.Service != "" {
		zc.InitialFields = map[string]any{"service": cfg.Service}
	}
	return zc.Build()
}

func baseConfig(level string) (zap.Config, error) {
	switch level {
	case "debug":
		return zap.NewDevelopmentConfig(), nil
	case "":
		return zap.NewProductionConfig(), nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.Config{}, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc, nil
}

// Component returns a child logger for one subsystem of the service, such as
// the refresher or the maven client.
func Component(l *zap.Logger, name string) *zap.Logger {
	return l.Named(name)
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}

// RequestFields describes a request for access logs. The generation path
// parameter is included when the route has one.
func RequestFields(c *fiber.Ctx) []zap.Field {
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("ip", c.IP()),
	}
	if gen := c.Params("generation"); gen != "" {
		fields = append(fields, zap.String("generation", gen))
	}
	return fields
}
