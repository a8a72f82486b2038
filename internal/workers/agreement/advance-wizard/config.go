// internal/workers/agreement/advance-wizard/config.go
package advancewizard

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
