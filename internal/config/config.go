// Package config は環境変数からサーバー設定を読み込みます。
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DevJWTSecret は開発用のフォールバック署名シークレットです。
// 本番環境では必ずJWT_SECRETで上書きしてください。
const DevJWTSecret = "supersecret"

// Config contains server configuration parameters.
type Config struct {
	Port       string `env:"PORT" envDefault:"3001"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
	Mongo      Mongo  `envPrefix:"MONGO_"`
	Redis      Redis  `envPrefix:"REDIS_"`
	JWT        JWT    `envPrefix:"JWT_"`
}

// Mongo contains MongoDB connection parameters.
type Mongo struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"sample_mflix"`
}

// Redis contains cache connection parameters.
// Addrが空の場合、サーバーはキャッシュなしで動作します。
type Redis struct {
	Addr     string        `env:"ADDR"`
	Password string        `env:"PASSWORD"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"supersecret"`
	TTL    time.Duration `env:"TTL" envDefault:"12h"`
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
