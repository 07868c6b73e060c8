package kafka

import (
	"strings"
)

// Config for the events producer
type Config struct {
	Brokers          string `envconfig:"BROKERS"`                            // "broker1:9092,broker2:9092"
	Topic            string `envconfig:"TOPIC" default:"horoscope.computed"` //
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"`                  // "SASL_SSL", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`                     // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// Enabled reports whether events publishing is configured
func (c *Config) Enabled() bool {
	return c != nil && c.Brokers != ""
}

// GetBrokers splits the broker list
func (c *Config) GetBrokers() []string {
	if c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	return strings.Split(c.Brokers, ",")
}
