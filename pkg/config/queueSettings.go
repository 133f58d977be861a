package config

// QueueSettings holds the SQS queue identifiers the reconciler talks to.
// StatusQueueURL and DLQURL are the two polled sources; EventQueueURL is the
// forward sink and PushQueueURL the retry intake.
type QueueSettings struct {
	Region         string `mapstructure:"region"`
	StatusQueueURL string `mapstructure:"status_queue_url" validate:"required,url"`
	DLQURL         string `mapstructure:"dlq_url" validate:"required,url"`
	EventQueueURL  string `mapstructure:"event_queue_url" validate:"required"`
	PushQueueURL   string `mapstructure:"push_queue_url" validate:"required"`
}
