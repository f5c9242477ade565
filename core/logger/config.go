package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level logged; "debug" also switches to the development config.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding, "json" or "console".
	Format string `mapstructure:"format" default:"json"`
	// Service is attached to every entry as the "service" field. Empty omits it.
	Service string `mapstructure:"service" default:"ornithe-meta"`
}
