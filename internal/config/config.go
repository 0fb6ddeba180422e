package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

type Config struct {
	AppEnv       string        `envconfig:"APP_ENV"        default:"development"`
	Port         string        `envconfig:"PORT"           default:"4000"`
	ClientOrigin string        `envconfig:"CLIENT_ORIGIN"  default:"*"`
	JWTSecret    string        `envconfig:"JWT_SECRET"`
	JWTTTL       time.Duration `envconfig:"JWT_TTL"        default:"168h"`

	StorageDriver string `envconfig:"STORAGE_DRIVER"   default:"mongo"`
	MongoURI      string `envconfig:"MONGODB_URI"`
	MongoDatabase string `envconfig:"MONGODB_DATABASE" default:"solotrip"`
	PostgresURL   string `envconfig:"POSTGRES_URL"`

	RedisURL     string `envconfig:"REDIS_URL"`
	RedisChannel string `envconfig:"REDIS_CHANNEL" default:"trip-comments"`

	PlacesAPIKey string `envconfig:"GOOGLE_PLACES_API_KEY"`

	OpenRouterKey   string        `envconfig:"OPENROUTER_API_KEY"`
	OpenRouterModel string        `envconfig:"OPENROUTER_MODEL"`
	GroqKey         string        `envconfig:"GROQ_API_KEY"`
	GroqModel       string        `envconfig:"GROQ_MODEL"`
	GeminiKey       string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel     string        `envconfig:"GEMINI_MODEL"`
	ProviderOrder   []string      `envconfig:"LLM_PROVIDER_ORDER"  default:"openrouter,groq,gemini"`
	AttemptTimeout  time.Duration `envconfig:"LLM_ATTEMPT_TIMEOUT" default:"30s"`
	GenerateTimeout time.Duration `envconfig:"GENERATION_TIMEOUT"  default:"90s"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	for i, name := range c.ProviderOrder {
		c.ProviderOrder[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("missing required configuration: JWT_SECRET")
	}
	switch c.StorageDriver {
	case StorageMongo:
		if c.MongoURI == "" {
			return errors.New("missing required configuration: MONGODB_URI")
		}
	case StoragePostgres:
		if c.PostgresURL == "" {
			return errors.New("missing required configuration: POSTGRES_URL")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (want %s or %s)", c.StorageDriver, StorageMongo, StoragePostgres)
	}
	for _, name := range c.ProviderOrder {
		switch name {
		case "openrouter", "groq", "gemini":
		default:
			return fmt.Errorf("unknown provider %q in LLM_PROVIDER_ORDER", name)
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// OpenRouterAPIKey falls back to the Groq key, which some deployments share.
func (c *Config) OpenRouterAPIKey() string {
	if c.OpenRouterKey != "" {
		return c.OpenRouterKey
	}
	return c.GroqKey
}
