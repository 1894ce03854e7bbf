package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		TTL string `yaml:"ttl"`
	} `yaml:"catalog"`
	Rules Rules `yaml:"rules"`
}

// Rules carries the tunable phase timings and track parameters. Empty fields
// fall back to the classroom defaults.
type Rules struct {
	ReadingTime   string `yaml:"reading_time"`
	AnswerTime    string `yaml:"answer_time"`
	BuzzerPause   string `yaml:"buzzer_pause"`
	ResultPause   string `yaml:"result_pause"`
	CountdownTime string `yaml:"countdown_time"`
	QuestionTime  string `yaml:"question_time"`
	TickInterval  string `yaml:"tick_interval"`
	AdvanceStep   int    `yaml:"advance_step"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
