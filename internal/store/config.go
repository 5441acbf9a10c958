package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SourceURL       string `yaml:"source_url"`
	ScrapeMinutes   int    `yaml:"scrape_minutes"`
	FetchTimeoutSec int    `yaml:"fetch_timeout_sec"`
	DataDir         string `yaml:"data_dir"`
	DefaultIcon     string `yaml:"default_icon"`
	Selectors       struct {
		Card   string `yaml:"card"`
		Name   string `yaml:"name"`
		Value  string `yaml:"value"`
		Demand string `yaml:"demand"`
	} `yaml:"selectors"`
	Notify struct {
		WebhookBase string `yaml:"webhook_base"`
		SendLimit   int    `yaml:"send_limit"`
		TimeoutSec  int    `yaml:"timeout_sec"`
	} `yaml:"notify"`
	API struct {
		Addr string `yaml:"addr"`
	} `yaml:"api"`
}

func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return fmt.Errorf("source_url cannot be empty")
	}
	if c.ScrapeMinutes <= 0 {
		return fmt.Errorf("scrape_minutes must be positive, got %d", c.ScrapeMinutes)
	}
	if c.FetchTimeoutSec <= 0 {
		return fmt.Errorf("fetch_timeout_sec must be positive, got %d", c.FetchTimeoutSec)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.ScrapeMinutes == 0 {
		c.ScrapeMinutes = 10
	}
	if c.FetchTimeoutSec == 0 {
		c.FetchTimeoutSec = 10
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.DefaultIcon == "" {
		c.DefaultIcon = "🧠"
	}
	if c.Selectors.Card == "" {
		c.Selectors.Card = ".value-card"
	}
	if c.Selectors.Name == "" {
		c.Selectors.Name = ".name"
	}
	if c.Selectors.Value == "" {
		c.Selectors.Value = ".value"
	}
	if c.Selectors.Demand == "" {
		c.Selectors.Demand = ".demand"
	}
	if c.Notify.SendLimit == 0 {
		c.Notify.SendLimit = 4
	}
	if c.Notify.TimeoutSec == 0 {
		c.Notify.TimeoutSec = 10
	}
	if c.API.Addr == "" {
		c.API.Addr = ":8460"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
