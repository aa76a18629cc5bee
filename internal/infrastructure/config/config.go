package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// SessionIdleTimeout is how long a session may sit idle before the next
	// interaction forces it back to anonymous.
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT, default=30m"`

	// StorageBackend selects the repositories: "file" or "mongo".
	StorageBackend string `env:"STORAGE_BACKEND, default=file"`
	// SessionBackend selects the session store: "memory" or "redis".
	SessionBackend string `env:"SESSION_BACKEND, default=memory"`
	// DataDir is the flat-file data directory for the file backend.
	DataDir string `env:"DATA_DIR, default=./data"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Accounts AccountsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=account_dashboard"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AccountsConfig holds the passwords for the three provisioned accounts.
type AccountsConfig struct {
	HBLPassword       string `env:"ACCOUNT_HBL_PASSWORD,       default=085211"`
	JazzcashPassword  string `env:"ACCOUNT_JAZZCASH_PASSWORD,  default=085211"`
	EasyPaisaPassword string `env:"ACCOUNT_EASYPAISA_PASSWORD, default=085211"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
