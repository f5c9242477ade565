package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ReadTimeoutSeconds bounds reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"10"`
	// WriteTimeoutSeconds bounds writing a response.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"30"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

// Address returns the listen address.
func (c Config) Address() string {
	return ":" + c.Port
}

// ReadTimeout returns the read timeout, zero meaning none.
func (c Config) ReadTimeout() time.Duration {
	return seconds(c.ReadTimeoutSeconds)
}

// WriteTimeout returns the write timeout, zero meaning none.
func (c Config) WriteTimeout() time.Duration {
	return seconds(c.WriteTimeoutSeconds)
}

// ShutdownTimeout returns the graceful shutdown timeout, defaulting to ten
// seconds.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return seconds(c.ShutdownTimeoutSeconds)
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
