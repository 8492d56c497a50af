package account

import (
	"github.com/optakt/account-registry/models/registry"
)

// Config is the configuration for an account registry.
type Config struct {
	CacheSize uint64 `validate:"gt=0"`
	Params    registry.Params
}

// DefaultConfig is the default configuration for an account registry. The
// cache size is expressed as a number of account records.
var DefaultConfig = Config{
	CacheSize: 100_000,
	Params:    registry.DefaultParams(),
}

// Option is a configuration option for an account registry.
type Option func(*Config)

// WithCacheSize specifies how many account records the registry keeps in its
// read cache.
func WithCacheSize(size uint64) Option {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}

// WithParams specifies the chain parameters of the registry, including the
// reserved address set.
func WithParams(params registry.Params) Option {
	return func(cfg *Config) {
		cfg.Params = params
	}
}
