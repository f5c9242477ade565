package maven

// Config holds configuration for upstream fetches.
type Config struct {
	// TimeoutSeconds bounds a single HTTP attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"20"`
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryDelayMillis is the initial backoff delay.
	RetryDelayMillis int `mapstructure:"retry_delay_millis" default:"500"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"ornithe-meta/3"`
}
