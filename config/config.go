package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig       `yaml:"app" envPrefix:"APP_"`
	HTTP      HTTPConfig      `yaml:"http" envPrefix:"HTTP_"`
	GRPC      GRPCConfig      `yaml:"grpc" envPrefix:"GRPC_"`
	Store     StoreConfig     `yaml:"store" envPrefix:"STORE_"`
	Database  DatabaseConfig  `yaml:"database" envPrefix:"DB_"`
	Redis     RedisConfig     `yaml:"redis" envPrefix:"REDIS_"`
	Kafka     KafkaConfig     `yaml:"kafka" envPrefix:"KAFKA_"`
	AMQP      AMQPConfig      `yaml:"amqp" envPrefix:"AMQP_"`
	Notifier  NotifierConfig  `yaml:"notifier" envPrefix:"NOTIFIER_"`
	Telemetry TelemetryConfig `yaml:"telemetry" envPrefix:"OTEL_"`
}

type AppConfig struct {
	Env     string `yaml:"env" env:"ENV"`
	LogMode string `yaml:"log_mode" env:"LOG_MODE"`
}

type HTTPConfig struct {
	Address    string `yaml:"address" env:"ADDRESS"`
	SwaggerDir string `yaml:"swagger_dir" env:"SWAGGER_DIR"`
}

type GRPCConfig struct {
	Address string `yaml:"address" env:"ADDRESS"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver string `yaml:"driver" env:"DRIVER"`
	Seed   bool   `yaml:"seed" env:"SEED"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	Name     string `yaml:"name" env:"NAME"`
	SSLMode  string `yaml:"ssl_mode" env:"SSL_MODE"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig leaves Redis disabled when Addr is empty.
type RedisConfig struct {
	Addr                   string `yaml:"addr" env:"ADDR"`
	Password               string `yaml:"password" env:"PASSWORD"`
	DB                     int    `yaml:"db" env:"DB"`
	FlightsCacheTTLSeconds int    `yaml:"flights_cache_ttl_seconds" env:"FLIGHTS_CACHE_TTL_SECONDS"`
	BagLockTTLSeconds      int    `yaml:"bag_lock_ttl_seconds" env:"BAG_LOCK_TTL_SECONDS"`
}

func (r RedisConfig) FlightsCacheTTL() time.Duration {
	return time.Duration(r.FlightsCacheTTLSeconds) * time.Second
}

func (r RedisConfig) BagLockTTL() time.Duration {
	return time.Duration(r.BagLockTTLSeconds) * time.Second
}

type KafkaConfig struct {
	Brokers       []string `yaml:"brokers" env:"BROKERS" envSeparator:","`
	BoardingTopic string   `yaml:"boarding_topic" env:"BOARDING_TOPIC"`
	GroupID       string   `yaml:"group_id" env:"GROUP_ID"`
}

type AMQPConfig struct {
	URL      string `yaml:"url" env:"URL"`
	Exchange string `yaml:"exchange" env:"EXCHANGE"`
}

type NotifierConfig struct {
	PublishTimeoutMS int `yaml:"publish_timeout_ms" env:"PUBLISH_TIMEOUT_MS"`
}

func (n NotifierConfig) PublishTimeout() time.Duration {
	return time.Duration(n.PublishTimeoutMS) * time.Millisecond
}

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

type TelemetryConfig struct {
	Exporter     string `yaml:"exporter" env:"EXPORTER"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"ENDPOINT"`
	ServiceName  string `yaml:"service_name" env:"SERVICE_NAME"`
}

// LoadConfig reads the yaml file at path, then lets environment variables
// (optionally seeded from a .env file) override individual values.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.LogMode == "" {
		c.App.LogMode = "dev"
	}
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Store.Driver == "" {
		c.Store.Driver = StoreDriverPostgres
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Redis.FlightsCacheTTLSeconds == 0 {
		c.Redis.FlightsCacheTTLSeconds = 60
	}
	if c.Redis.BagLockTTLSeconds == 0 {
		c.Redis.BagLockTTLSeconds = 5
	}
	if c.Kafka.BoardingTopic == "" {
		c.Kafka.BoardingTopic = "boarding-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "baggage-reconciliation"
	}
	if c.AMQP.Exchange == "" {
		c.AMQP.Exchange = "boarding-events"
	}
	if c.Notifier.PublishTimeoutMS == 0 {
		c.Notifier.PublishTimeoutMS = 3000
	}
	if c.Telemetry.Exporter == "" {
		c.Telemetry.Exporter = ExporterNone
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "passenger-processing"
	}
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Telemetry.Exporter {
	case ExporterNone, ExporterStdout, ExporterOTLP:
	default:
		return fmt.Errorf("unknown telemetry exporter %q", c.Telemetry.Exporter)
	}
	if c.Telemetry.Exporter == ExporterOTLP && c.Telemetry.OTLPEndpoint == "" {
		return errors.New("telemetry.otlp_endpoint is required for the otlp exporter")
	}
	if c.Notifier.PublishTimeoutMS < 0 {
		return errors.New("notifier.publish_timeout_ms must not be negative")
	}
	return nil
}
