package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube    YouTubeConfig    `yaml:"youtube"`
	Instagram  InstagramConfig  `yaml:"instagram"`
	Research   ResearchConfig   `yaml:"research"`
	Email      EmailConfig      `yaml:"email"`
	Watch      WatchConfig      `yaml:"watch"`
	Server     ServerConfig     `yaml:"server"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

type YouTubeConfig struct {
	APIKey     string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
	MaxResults int64  `yaml:"max_results"`
}

type InstagramConfig struct {
	SerpAPIKey string `yaml:"serpapi_key" env:"SERPAPI_API_KEY"`
	SearchURL  string `yaml:"search_url"`
	Limit      int    `yaml:"limit"`
}

type ResearchConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	DefaultDepth string `yaml:"default_depth"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

type WatchConfig struct {
	Topics   []string `yaml:"topics"`
	Schedule string   `yaml:"schedule"`
	Depth    string   `yaml:"depth"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		// The config file is optional; credentials can come entirely from
		// the environment.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Credentials are deliberately not validated here. A missing key degrades
	// the matching platform to an empty result set, it does not stop startup.
	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if cfg.Instagram.SerpAPIKey == "" {
		cfg.Instagram.SerpAPIKey = os.Getenv("SERPAPI_API_KEY")
	}
	if cfg.Instagram.SerpAPIKey == "" {
		cfg.Instagram.SerpAPIKey = os.Getenv("SERPAPI_KEY")
	}
	if cfg.Research.GeminiAPIKey == "" {
		cfg.Research.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Email.Username == "" {
		cfg.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if cfg.Email.Password == "" {
		cfg.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.YouTube.MaxResults <= 0 {
		c.YouTube.MaxResults = 8
	}
	if c.YouTube.MaxResults > 20 {
		c.YouTube.MaxResults = 20
	}
	if c.Instagram.SearchURL == "" {
		c.Instagram.SearchURL = "https://serpapi.com/search.json"
	}
	if c.Instagram.Limit <= 0 {
		c.Instagram.Limit = 6
	}
	if c.Instagram.Limit > 12 {
		c.Instagram.Limit = 12
	}
	if c.Research.DefaultDepth == "" {
		c.Research.DefaultDepth = "Standard Analysis"
	}
	if c.Watch.Schedule == "" {
		c.Watch.Schedule = "0 0 9 * * *" // Daily at 9 AM
	}
	if c.Watch.Depth == "" {
		c.Watch.Depth = c.Research.DefaultDepth
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8090
	}
	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Monitoring.HealthPort < 0 || c.Monitoring.HealthPort > 65535 {
		return fmt.Errorf("health port %d out of range", c.Monitoring.HealthPort)
	}
	return nil
}

// ValidateWatch checks the fields watch mode needs on top of the base
// config. Called only when the watch scheduler is about to start.
func (c *Config) ValidateWatch() error {
	if len(c.Watch.Topics) == 0 {
		return fmt.Errorf("watch mode requires at least one topic (set watch.topics)")
	}
	if c.Email.Username == "" {
		return fmt.Errorf("email username is required for watch digests (set EMAIL_USERNAME or email.username)")
	}
	if c.Email.Password == "" {
		return fmt.Errorf("email password is required for watch digests (set EMAIL_PASSWORD or email.password)")
	}
	if c.Email.SMTPServer == "" {
		return fmt.Errorf("SMTP server is required for watch digests (set email.smtp_server)")
	}
	return nil
}
