// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	FontDir      string `yaml:"font_dir"`
	HeadingLevel int    `yaml:"heading_level"`
	Strict       bool   `yaml:"strict_parsing"`
	Cover        bool   `yaml:"cover"`
	Frame        bool   `yaml:"frame"`
	SizeLabel    bool   `yaml:"size_label"`
	Grid         struct {
		Rows int `yaml:"rows"`
		Cols int `yaml:"cols"`
	} `yaml:"grid"`
	CardSize struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"card_size"`
}

// Default returns the configuration used when no config file is given.
// Card size and margins match the original print workflow: 91x59mm cards
// maximized on landscape A4, cut frames and per-page size labels on.
func Default() *Config {
	var cfg Config
	cfg.FontDir = "."
	cfg.HeadingLevel = 4
	cfg.Cover = true
	cfg.Frame = true
	cfg.SizeLabel = true
	cfg.CardSize.Width = 91.0
	cfg.CardSize.Height = 59.0
	return &cfg
}

// Load reads a YAML config file. Keys absent from the file keep their
// default values; Grid rows/cols of zero mean "maximize from card size".
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.HeadingLevel < 1 || cfg.HeadingLevel > 6 {
		cfg.HeadingLevel = 4
	}
	if cfg.CardSize.Width <= 0 {
		cfg.CardSize.Width = 91.0
	}
	if cfg.CardSize.Height <= 0 {
		cfg.CardSize.Height = 59.0
	}

	return cfg, nil
}
