package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Settings struct {
	Queues            QueueSettings  `mapstructure:"queues"`
	Lookup            LookupSettings `mapstructure:"lookup"`
	Sink              SinkSettings   `mapstructure:"sink"`
	MaxMessages       int            `mapstructure:"max_messages" validate:"gt=0,lte=10"`
	MaxRetryCount     int            `mapstructure:"max_retry_count" validate:"gte=0"`
	WaitSeconds       int            `mapstructure:"wait_seconds" validate:"gte=0,lte=20"`
	VisibilityTimeout int            `mapstructure:"visibility_timeout_seconds" validate:"gt=0,lte=43200"`
	Observability     Observability  `mapstructure:"observability"`
}

func (c *Settings) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func LoadFromFile(filePath string) (*Settings, error) {

	env := getEnvWithDefaultLookup("ENVIRONMENT", "development")

	cfg := &Settings{}
	viper.SetConfigType("yaml") // Set the config type to YAML
	viper.SetConfigName("reconciler")
	viper.AddConfigPath(filePath) // path to config
	viper.AddConfigPath(".")      // current directory

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file found or read error: %v (will rely on env)", err)
	}

	err := mergeConfig(filePath, "reconciler."+env)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error merging dev config: %s\n", err)
			os.Exit(1)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatalf("Failed to load from env: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("max_messages", 10)
	viper.SetDefault("max_retry_count", 3)
	viper.SetDefault("wait_seconds", 20)
	viper.SetDefault("visibility_timeout_seconds", 300)
	viper.SetDefault("lookup.type", "http")
	viper.SetDefault("lookup.timeout", "10s")
	viper.SetDefault("sink.type", "sqs")
}

func (c *Settings) LoadFromEnv() error {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("RECONCILER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // env vars like RECONCILER_QUEUES_STATUS_QUEUE_URL

	// Bind environment variables explicitly to ensure they map correctly
	viper.BindEnv("queues.region")
	viper.BindEnv("queues.status_queue_url")
	viper.BindEnv("queues.dlq_url")
	viper.BindEnv("queues.event_queue_url")
	viper.BindEnv("queues.push_queue_url")
	viper.BindEnv("lookup.type")
	viper.BindEnv("lookup.url")
	viper.BindEnv("lookup.timeout")
	viper.BindEnv("lookup.table")
	viper.BindEnv("lookup.region")
	viper.BindEnv("lookup.dsn")
	viper.BindEnv("sink.type")
	viper.BindEnv("sink.region")
	viper.BindEnv("sink.url")
	viper.BindEnv("sink.exchange")
	viper.BindEnv("sink.projectID")
	viper.BindEnv("max_messages")
	viper.BindEnv("max_retry_count")
	viper.BindEnv("wait_seconds")
	viper.BindEnv("visibility_timeout_seconds")
	viper.BindEnv("observability.service_name")
	viper.BindEnv("observability.tracing_url")
	viper.BindEnv("observability.metrics_url")

	if err := viper.Unmarshal(&c); err != nil {
		return err
	}
	return nil
}

func mergeConfig(path string, name string) error {
	viper.SetConfigName(name)
	viper.AddConfigPath(path)
	err := viper.MergeInConfig()
	if err != nil {
		return err
	}
	return nil
}

func getEnvWithDefaultLookup(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
