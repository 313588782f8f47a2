package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"` // memory or sqlite

	// Artificial delays, in milliseconds, before a submission is confirmed.
	SubmitDelayMS      int `env:"SUBMIT_DELAY_MS" envDefault:"700"`
	TransactionDelayMS int `env:"TRANSACTION_DELAY_MS" envDefault:"650"`

	ToastTTLMS    int   `env:"TOAST_TTL_MS" envDefault:"2500"`
	MaxImageBytes int64 `env:"MAX_IMAGE_BYTES" envDefault:"4194304"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) SubmitDelay() time.Duration {
	return time.Duration(c.SubmitDelayMS) * time.Millisecond
}

func (c *Config) TransactionDelay() time.Duration {
	return time.Duration(c.TransactionDelayMS) * time.Millisecond
}

func (c *Config) ToastTTL() time.Duration {
	return time.Duration(c.ToastTTLMS) * time.Millisecond
}
