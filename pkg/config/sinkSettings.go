package config

// SinkSettings holds configuration for the outbound transport carrying retry
// and forward submissions. The destination (queue URL, routing key or topic)
// comes from QueueSettings; this picks the transport itself.
type SinkSettings struct {
	Type      string `mapstructure:"type" validate:"oneof=sqs rabbitmq pubsub"`
	Region    string `mapstructure:"region"`
	URL       string `mapstructure:"url" validate:"required_if=Type rabbitmq"`
	Exchange  string `mapstructure:"exchange"`
	ProjectID string `mapstructure:"projectID" validate:"required_if=Type pubsub"`
}
