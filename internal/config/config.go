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

// Catalog configures the product source. Source may be a local file path or
// an http(s) URL; a single load attempt is made per process start.
type Catalog struct {
	Source       string        `yaml:"source" env:"CATALOG_SOURCE" env-default:"data/products.json"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"CATALOG_FETCH_TIMEOUT" env-default:"5s"`
}

// Storage selects the cart persistence backend.
type Storage struct {
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`
	Path    string `yaml:"path" env:"STORAGE_PATH" env-default:"data/storage"`
}

type RedisConnect struct {
	Addr     string `yaml:"REDIS_ADDR" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// Checkout holds the simulated processing delays. Order processing is
// fabricated; these delays stand in for the gateway round-trip.
type Checkout struct {
	ProcessingDelay time.Duration `yaml:"processing_delay" env:"CHECKOUT_PROCESSING_DELAY" env-default:"2s"`
	RedirectDelay   time.Duration `yaml:"redirect_delay" env:"CHECKOUT_REDIRECT_DELAY" env-default:"3s"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   `yaml:"http_server"`
	Catalog      Catalog      `yaml:"catalog"`
	Storage      Storage      `yaml:"storage"`
	RedisConnect RedisConnect `yaml:"redis"`
	Checkout     Checkout     `yaml:"checkout"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

// LoadConfigFromPath reads the config file at path, with environment
// variables taking precedence. An empty path reads the environment only.
func LoadConfigFromPath(configPath string) (*Config, error) {

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("can not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Addr, r.DB)
}
