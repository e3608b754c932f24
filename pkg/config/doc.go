// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - An optional ".env" in the working directory is loaded once per process;
//     WithEnvFiles adds files that must exist.
//   - Values already present in the environment always win over .env files.
//   - Structs are populated from `env` / `envDefault` tags, optionally under a
//     common prefix (WithPrefix).
//
// # Usage
//
//	type Config struct {
//		Addr    string         `env:"ADDR" envDefault:":8080"`
//		Consent consent.Config `envPrefix:"CONSENT_"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Parsing failures are wrapped with ErrParsingConfig, missing explicit .env
// files with ErrLoadingEnvFile. MustLoad panics instead, which suits values
// the process cannot start without.
package config
