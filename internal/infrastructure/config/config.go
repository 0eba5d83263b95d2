package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration. Every key is read from the environment
// (a .env file is loaded first by the binary) and has a default.
type Config struct {
	HTTPPort int    `mapstructure:"http_port"`
	GinMode  string `mapstructure:"gin_mode"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	AWSRegion          string `mapstructure:"aws_region"`
	AWSAccessKeyID     string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint   string `mapstructure:"dynamodb_endpoint"`

	JobsTable           string `mapstructure:"jobs_table"`
	ServicesTable       string `mapstructure:"services_table"`
	PartsTable          string `mapstructure:"parts_table"`
	StockMovementsTable string `mapstructure:"stock_movements_table"`
	QuotesTable         string `mapstructure:"quotes_table"`

	KafkaBrokers            []string `mapstructure:"-"`
	KafkaNotificationsTopic string   `mapstructure:"kafka_notifications_topic"`

	CatalogCacheTTL  time.Duration `mapstructure:"catalog_cache_ttl"`
	SessionIdleTTL   time.Duration `mapstructure:"session_idle_ttl"`
	JobWatchInterval time.Duration `mapstructure:"job_watch_interval"`
}

var defaults = map[string]any{
	"http_port":                 8080,
	"gin_mode":                  "",
	"log_level":                 "info",
	"log_format":                "json",
	"aws_region":                "us-east-1",
	"aws_access_key_id":         "local",
	"aws_secret_access_key":     "local",
	"dynamodb_endpoint":         "",
	"jobs_table":                "jobs",
	"services_table":            "catalog_services",
	"parts_table":               "catalog_parts",
	"stock_movements_table":     "stock_movements",
	"quotes_table":              "quotes",
	"kafka_brokers":             "",
	"kafka_notifications_topic": "job-notifications",
	"catalog_cache_ttl":         "5m",
	"session_idle_ttl":          "30m",
	"job_watch_interval":        "2s",
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads the configuration through v, which callers may pre-populate.
func LoadFrom(v *viper.Viper) (*Config, error) {
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	for _, b := range strings.Split(v.GetString("kafka_brokers"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	return cfg, nil
}
