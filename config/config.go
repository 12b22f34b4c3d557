package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type StoreBackend string

const (
	StoreMemory   StoreBackend = "memory"
	StorePostgres StoreBackend = "postgres"
	StoreSQLite   StoreBackend = "sqlite"
	StoreRedis    StoreBackend = "redis"
	StoreMongo    StoreBackend = "mongo"
	StoreR2       StoreBackend = "r2"
)

// Config holds every configuration parameter of the service.
type Config struct {
	ServerPort int
	LogLevel   string
	LogFormat  string

	StoreBackend StoreBackend
	DatabaseURL  string
	SQLitePath   string
	TursoURL     string
	TursoToken   string
	RedisURL     string
	MongoURI     string
	MongoDB      string
	R2           R2Config

	JWTSecretKey          string
	OrganizerPasswordHash string
	DefaultMaxPlayers     int
	CORSAllowedOrigins    []string

	PubSub PubSubConfig
	Slack  SlackConfig
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
}

type PubSubConfig struct {
	ProjectID string
	Topic     string
}

func (c PubSubConfig) Enabled() bool {
	return c.ProjectID != "" && c.Topic != ""
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// Load reads the configuration from the environment, after loading an
// optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	maxPlayers, err := intEnv("DEFAULT_MAX_PLAYERS", 8)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:   port,
		LogLevel:     envOr("LOG_LEVEL", "info"),
		LogFormat:    envOr("LOG_FORMAT", "text"),
		StoreBackend: StoreBackend(strings.ToLower(envOr("STORE_BACKEND", string(StoreMemory)))),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   envOr("SQLITE_PATH", "tennis-cup.db"),
		TursoURL:     os.Getenv("TURSO_URL"),
		TursoToken:   os.Getenv("TURSO_AUTH_TOKEN"),
		RedisURL:     os.Getenv("REDIS_URL"),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      envOr("MONGO_DATABASE", "tennis_cup"),
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
		},
		JWTSecretKey:          os.Getenv("JWT_SECRET_KEY"),
		OrganizerPasswordHash: os.Getenv("ORGANIZER_PASSWORD_HASH"),
		DefaultMaxPlayers:     maxPlayers,
		CORSAllowedOrigins:    splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
		PubSub: PubSubConfig{
			ProjectID: os.Getenv("GCP_PROJECT"),
			Topic:     os.Getenv("PUBSUB_TOPIC"),
		},
		Slack: SlackConfig{
			Token:     os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID: os.Getenv("SLACK_CHANNEL_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings required by the chosen backend are set.
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}
	if c.OrganizerPasswordHash == "" {
		return fmt.Errorf("ORGANIZER_PASSWORD_HASH environment variable is not set")
	}
	if c.DefaultMaxPlayers < 4 || c.DefaultMaxPlayers%2 != 0 {
		return fmt.Errorf("DEFAULT_MAX_PLAYERS must be an even number of at least 4, got %d", c.DefaultMaxPlayers)
	}

	switch c.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s store", c.StoreBackend)
		}
	case StoreSQLite:
		if c.SQLitePath == "" && c.TursoURL == "" {
			return fmt.Errorf("SQLITE_PATH or TURSO_URL is required for the %s store", c.StoreBackend)
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the %s store", c.StoreBackend)
		}
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the %s store", c.StoreBackend)
		}
	case StoreR2:
		if c.R2.AccountID == "" || c.R2.AccessKeyID == "" || c.R2.SecretAccessKey == "" || c.R2.BucketName == "" {
			return fmt.Errorf("R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_BUCKET_NAME are required for the %s store", c.StoreBackend)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
