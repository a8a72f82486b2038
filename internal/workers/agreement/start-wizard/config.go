// internal/workers/agreement/start-wizard/config.go
package startwizard

import "time"

type Config struct {
	Timeout    time.Duration
	SessionTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    30 * time.Second,
		SessionTTL: 30 * time.Minute,
	}
}
