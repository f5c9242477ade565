// Package config provides configuration management for ornithe-meta.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv). Defaults live in struct tags next to
// each field.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port and timeouts (SERVER_*)
//   - Storage: S3/MinIO launcher metadata cache (STORAGE_*)
//   - Log: Logging level and format (LOG_*)
//   - Maven: upstream fetch timeout, retries and user agent (MAVEN_*)
//   - Meta: generations, repositories, refresh interval, overrides (META_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Meta.LatestGeneration)
package config
