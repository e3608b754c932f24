package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

type options struct {
	prefix     string
	envFiles   []string
	onSet      env.OnSetFn
	skipDotEnv bool
}

// Option configures Load.
type Option func(*options)

// WithPrefix prepends prefix to every env variable name, e.g. "CONSENT_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// ".env", these files must exist. Variables already set in the process
// environment take precedence.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithoutDotEnv skips the implicit ".env" in the working directory.
func WithoutDotEnv() Option {
	return func(o *options) {
		o.skipDotEnv = true
	}
}

// WithOnSet registers a hook called for every field set from the environment.
func WithOnSet(fn env.OnSetFn) Option {
	return func(o *options) {
		o.onSet = fn
	}
}

// Load parses environment variables into v using `env` struct tags.
// A ".env" file in the working directory is loaded once per process if it
// exists.
//
//	type ServerConfig struct {
//		Addr string `env:"ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	err := config.Load(&cfg, config.WithPrefix("CONSENT_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if !o.skipDotEnv {
		defaultEnvLoaded.Do(func() {
			// The default .env is optional.
			_ = godotenv.Load()
		})
	}
	if len(o.envFiles) > 0 {
		if err := LoadEnv(o.envFiles...); err != nil {
			return err
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix: o.prefix,
		OnSet:  o.onSet,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads .env files into the process environment without overriding
// variables that are already set.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
