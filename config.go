package monetary

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config is a read-only key-value store queried by [TextFormat].
// Implementations must be safe for concurrent use and must not change
// their contents after they have been handed to a format.
type Config interface {
	// Lookup returns the value stored under key and reports whether it was present.
	Lookup(key string) (string, bool)
}

// MapConfig is an in-memory [Config].
type MapConfig map[string]string

// Lookup implements the [Config] interface.
func (m MapConfig) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvConfig is a [Config] backed by the process environment.
// The key "toStringFormatOrder" with prefix "MONETARY_" is looked up as the
// environment variable "MONETARY_toStringFormatOrder".
type EnvConfig struct {
	Prefix string
}

// Lookup implements the [Config] interface.
func (e EnvConfig) Lookup(key string) (string, bool) {
	return os.LookupEnv(e.Prefix + key)
}

// ChainConfig queries its members in order and returns the first value found.
type ChainConfig []Config

// Lookup implements the [Config] interface.
func (c ChainConfig) Lookup(key string) (string, bool) {
	for _, conf := range c {
		if conf == nil {
			continue
		}
		if v, ok := conf.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// ReadConfigFile reads a dotenv file into a [MapConfig].
// The process environment is left untouched.
func ReadConfigFile(filename string) (MapConfig, error) {
	m, err := godotenv.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", filename, err)
	}
	return MapConfig(m), nil
}

func lookup(conf Config, key string) (string, bool) {
	if conf == nil {
		return "", false
	}
	return conf.Lookup(key)
}
