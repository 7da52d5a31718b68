package config

import (
	"errors"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds everything the notifier needs at startup.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Firebase      FirebaseConfig      `yaml:"firebase"`
	Trigger       TriggerConfig       `yaml:"trigger"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Sellers       SellersConfig       `yaml:"sellers"`
	Push          PushConfig          `yaml:"push"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// MaxInstances caps concurrent invocations process-wide.
	MaxInstances int `yaml:"maxInstances" validate:"min=1"`
	// RetryOnFault makes operational faults reply 500 so the platform redelivers.
	RetryOnFault        bool `yaml:"retryOnFault"`
	InvocationTimeoutMs int  `yaml:"invocationTimeoutMs" validate:"min=0"`
}

func (c ServerConfig) InvocationTimeout() time.Duration {
	if c.InvocationTimeoutMs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.InvocationTimeoutMs) * time.Millisecond
}

type FirebaseConfig struct {
	ProjectID       string `yaml:"projectId"`
	CredentialsPath string `yaml:"credentialsPath"`
}

type TriggerConfig struct {
	Document string `yaml:"document" validate:"required,contains={orderId}"`
}

type NotificationsConfig struct {
	Collection    string `yaml:"collection" validate:"required"`
	Subcollection string `yaml:"subcollection" validate:"required"`
	// KeyByOrder keys notifications on the order id instead of an auto id.
	KeyByOrder bool   `yaml:"keyByOrder"`
	Title      string `yaml:"title" validate:"required"`
	Message    string `yaml:"message" validate:"required"`
}

type SellersConfig struct {
	Collection string `yaml:"collection" validate:"required"`
}

type PushConfig struct {
	Title            string `yaml:"title" validate:"required"`
	Body             string `yaml:"body" validate:"required"`
	AndroidChannelID string `yaml:"androidChannelId"`
}

var validate = validator.New()

// Load reads the YAML file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, err
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, err
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if project := os.Getenv("GOOGLE_CLOUD_PROJECT"); project != "" {
		c.Firebase.ProjectID = project
	}
	if creds := os.Getenv("FIREBASE_CREDENTIALS_PATH"); creds != "" {
		c.Firebase.CredentialsPath = creds
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxInstances <= 0 {
		c.Server.MaxInstances = 10
	}
	if c.Trigger.Document == "" {
		c.Trigger.Document = "orders/{orderId}"
	}
	if c.Notifications.Collection == "" {
		c.Notifications.Collection = "notifications"
	}
	if c.Notifications.Subcollection == "" {
		c.Notifications.Subcollection = "notifications"
	}
	if c.Notifications.Title == "" {
		c.Notifications.Title = "New Order Received 🛒"
	}
	if c.Notifications.Message == "" {
		c.Notifications.Message = "You have received a new order."
	}
	if c.Sellers.Collection == "" {
		c.Sellers.Collection = "sellers"
	}
	if c.Push.Title == "" {
		c.Push.Title = c.Notifications.Title
	}
	if c.Push.Body == "" {
		c.Push.Body = c.Notifications.Message
	}
}

func (c Config) validate() error {
	return validate.Struct(c)
}
