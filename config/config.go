// Package config resolves the connection and logging settings the
// mapping layer consumes. The mapping layer itself never defaults or
// validates these values; it only reads what this package resolved.
package config

import (
	"time"

	"github.com/scbunn/neomodel/graph"
)

// Config is the root configuration for neomodel.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph" yaml:"graph" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GraphConfig contains graph database connection settings.
type GraphConfig struct {
	URI      string `mapstructure:"uri" yaml:"uri" validate:"required"`
	Username string `mapstructure:"username" yaml:"username" validate:"required"`
	Password string `mapstructure:"password" yaml:"password" validate:"required"`
	Database string `mapstructure:"database" yaml:"database,omitempty"`

	// Encrypted and TrustAll are recorded for operators migrating older
	// configurations. The driver derives transport security from the
	// URI scheme (bolt:// vs bolt+s:// vs bolt+ssc://), so these flags
	// do not alter the connection; prefer encoding security in the URI.
	Encrypted bool `mapstructure:"encrypted" yaml:"encrypted"`
	TrustAll  bool `mapstructure:"trust_all" yaml:"trust_all"`

	MaxConnectionLifetime time.Duration `mapstructure:"max_connection_lifetime" yaml:"max_connection_lifetime"`
	MaxConnectionPoolSize int           `mapstructure:"max_connection_pool_size" yaml:"max_connection_pool_size" validate:"min=1,max=1000"`
	ConnectionTimeout     time.Duration `mapstructure:"connection_timeout" yaml:"connection_timeout" validate:"min=1s"`

	// LoadBalancing selects the routing strategy for clustered
	// deployments. Recorded for routing-aware URI schemes.
	LoadBalancing string `mapstructure:"load_balancing" yaml:"load_balancing,omitempty" validate:"omitempty,oneof=least_connected round_robin"`
}

// LoggingConfig contains structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=json text"`
}

// ClientConfig converts the resolved settings into a graph client
// configuration.
func (g GraphConfig) ClientConfig() graph.Config {
	return graph.Config{
		URI:                   g.URI,
		Username:              g.Username,
		Password:              g.Password,
		Database:              g.Database,
		MaxConnectionPoolSize: g.MaxConnectionPoolSize,
		MaxConnectionLifetime: g.MaxConnectionLifetime,
		ConnectionTimeout:     g.ConnectionTimeout,
	}
}

// DefaultConfig returns the conventional local development defaults.
func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			URI:                   "bolt://localhost:7687",
			Username:              "neo4j",
			Password:              "neo4j",
			Encrypted:             false,
			MaxConnectionLifetime: time.Hour,
			MaxConnectionPoolSize: 100,
			ConnectionTimeout:     30 * time.Second,
			LoadBalancing:         "least_connected",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
