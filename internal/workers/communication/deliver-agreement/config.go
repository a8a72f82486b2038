// internal/workers/communication/deliver-agreement/config.go
package deliveragreement

import "time"

type Config struct {
	Timeout      time.Duration
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	SenderID     string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		EmailEnabled: true,
		SMSEnabled:   false,
		SenderID:     "AGRMNT",
	}
}
