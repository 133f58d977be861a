package config

import "time"

// LookupSettings selects and configures the original-request lookup backend.
type LookupSettings struct {
	Type    string        `mapstructure:"type" validate:"oneof=http dynamodb postgres"`
	URL     string        `mapstructure:"url" validate:"required_if=Type http,omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Table   string        `mapstructure:"table" validate:"required_if=Type dynamodb"`
	Region  string        `mapstructure:"region"`
	DSN     string        `mapstructure:"dsn" validate:"required_if=Type postgres"`
}
