package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Service struct {
		LogFile    string `yaml:"log_file" env:"LAUNDRY_LOG_FILE"`
		TariffPath string `yaml:"tariff_path" env:"LAUNDRY_TARIFF_PATH"`
	} `yaml:"service"`

	Report struct {
		TopCustomers int `yaml:"top_customers" env:"LAUNDRY_TOP_CUSTOMERS"`
	} `yaml:"report"`

	EstimateCache struct {
		MaxSize int           `yaml:"max_size"`
		TTL     time.Duration `yaml:"ttl"`
	} `yaml:"estimate_cache"`
}

func Default() *Config {
	var cfg Config
	cfg.Service.LogFile = "laundry.log"
	cfg.Report.TopCustomers = 5
	cfg.EstimateCache.MaxSize = 128
	return &cfg
}

// Load reads the yaml file when a path is given, then applies env
// overrides on top. An empty path means defaults plus env only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read yaml")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
