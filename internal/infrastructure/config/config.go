package config

import (
	"context"
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT    JWTConfig
	Hasher HasherConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type JWTConfig struct {
	Issuer         string `env:"JWT_ISSUER, default=auth-service"`
	TTLSeconds     int    `env:"JWT_TTL_SECONDS, default=3600"`
	PrivateKeyFile string `env:"JWT_PRIVATE_KEY_FILE, required"`
	PublicKeyFile  string `env:"JWT_PUBLIC_KEY_FILE, required"`
}

type HasherConfig struct {
	Cost    int `env:"BCRYPT_COST, default=10"`
	Workers int `env:"HASH_WORKERS, default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// TTL returns the configured token time-to-live as a duration.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Keys loads the RSA signing key pair from the configured PEM files. The
// private key signs tokens; the public key alone suffices to verify them.
func (c JWTConfig) Keys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privPEM, err := os.ReadFile(c.PrivateKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read private key: %w", err)
	}
	priv, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse private key: %w", err)
	}

	pubPEM, err := os.ReadFile(c.PublicKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read public key: %w", err)
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse public key: %w", err)
	}

	return priv, pub, nil
}
