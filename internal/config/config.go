package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

// Catalog points at the product feed. FeedSource is either a local file
// path or an http(s) URL; the feed is fetched once at startup.
type Catalog struct {
	FeedSource   string        `yaml:"FEED_SOURCE" env:"FEED_SOURCE" env-default:"products.json"`
	FetchTimeout time.Duration `yaml:"FETCH_TIMEOUT" env:"FEED_FETCH_TIMEOUT" env-default:"10s"`
}

// Database is the optional order archive. Leaving the host empty disables
// archiving; submitted orders are then kept in memory only.
type Database struct {
	Host     string `yaml:"PG_HOST" env:"PG_HOST" env-default:""`
	Port     string `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User     string `yaml:"PG_USER" env:"PG_USER" env-default:""`
	Password string `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-default:""`
	Name     string `yaml:"PG_DBNAME" env:"PG_DBNAME" env-default:""`
	SSLMode  string `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
}

// RedisConnect is the optional session cart store. Leaving the address
// empty falls back to the in-memory store.
type RedisConnect struct {
	Addr     string        `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:""`
	Password string        `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
	CartTTL  time.Duration `yaml:"CART_TTL" env:"CART_TTL" env-default:"72h"`
}

// SendGrid delivers the new-order notification to the bakery inbox.
// An empty API key disables notifications.
type SendGrid struct {
	APIKey     string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail  string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:""`
	FromName   string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Blue Moon Haven"`
	OrderInbox string `yaml:"ORDER_INBOX" env:"ORDER_INBOX" env-default:""`
}

// Telemetry configures the OTLP trace exporter. An empty endpoint
// disables tracing.
type Telemetry struct {
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT" env:"OTLP_ENDPOINT" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	Catalog      Catalog      `yaml:"catalog"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Telemetry    Telemetry    `yaml:"telemetry"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func (d *Database) Enabled() bool {
	return d.Host != ""
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) Enabled() bool {
	return r.Addr != ""
}
