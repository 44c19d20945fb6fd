package config

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/kelseyhightower/envconfig"

	"github.com/MatrixETF/solana-airdrop/internal/logging"
	"github.com/MatrixETF/solana-airdrop/internal/pkg"
)

type Config struct {
	Port           string            `envconfig:"PORT" default:"3000"`
	Network        string            `envconfig:"NETWORK" default:"devnet"`
	RPCURL         string            `envconfig:"RPC_URL"`
	PrivateKey     string            `envconfig:"PRIVATE_KEY" required:"true"`
	ServiceName    string            `envconfig:"SERVICE_NAME" default:"MatrixETF"`
	StaticDir      string            `envconfig:"STATIC_DIR" default:"./page"`
	LogFormat      logging.LogFormat `envconfig:"LOG_FORMAT" default:"text"`
	RequestTimeout time.Duration     `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	// Redis is optional; an empty address disables the mint cache.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	Operator    solana.PrivateKey `ignored:"true"`
	RPCEndpoint string            `ignored:"true"`
}

// Load reads the environment and resolves the operator key and RPC endpoint.
// Any error here must stop the process before it listens.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env var: %w", err)
	}

	cfg.Operator, err = ParseOperatorKey(cfg.PrivateKey)
	if err != nil {
		return Config{}, fmt.Errorf("invalid PRIVATE_KEY: %w", err)
	}

	cfg.RPCEndpoint = cfg.RPCURL
	if cfg.RPCEndpoint == "" {
		cfg.RPCEndpoint, err = pkg.ClusterRPC(cfg.Network)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NETWORK: %w", err)
		}
	}
	return cfg, nil
}
