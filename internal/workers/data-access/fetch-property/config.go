// internal/workers/data-access/fetch-property/config.go
package fetchproperty

import "time"

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  30 * time.Second,
		CacheTTL: 5 * time.Minute,
	}
}
