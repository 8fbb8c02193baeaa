// Package graph provides the session capability the mapping layer runs
// its statements through. The concrete client wraps the official Neo4j
// driver; a mock client backs unit tests. The mapping layer never sees
// driver types, only the Result/Record/Node shapes defined here.
package graph

import (
	"context"
	"time"

	"github.com/scbunn/neomodel/types"
)

// Client runs Cypher statements against a graph database.
// Implementations must be safe for concurrent use.
type Client interface {
	// Connect establishes a connection to the graph database.
	Connect(ctx context.Context) error

	// Close releases all resources and closes the database connection.
	Close(ctx context.Context) error

	// Verify checks connectivity to the database. Returns an error when
	// the database is unreachable.
	Verify(ctx context.Context) error

	// Read executes a Cypher statement in a read transaction and drains
	// the full result set before returning.
	Read(ctx context.Context, cypher string, params map[string]any) (Result, error)

	// Write executes a Cypher statement in a write transaction.
	Write(ctx context.Context, cypher string, params map[string]any) (Result, error)
}

// Node is the wire shape of a returned graph node entity: a set of
// string labels, the backend-assigned numeric identity, and a property
// map of scalar values. The numeric identity is not stable across
// database restarts and is not safe for application use.
type Node struct {
	ID     int64
	Labels []string
	Props  map[string]any
}

// Label returns the first label on the node, or "" for an unlabeled
// node. Multi-label nodes resolve by whichever label comes first.
func (n Node) Label() string {
	if len(n.Labels) == 0 {
		return ""
	}
	return n.Labels[0]
}

// Record is one result row: named access to the returned entities.
// Node entities appear as graph.Node values; scalars pass through.
type Record map[string]any

// Result holds the fully drained rows of one statement execution.
type Result struct {
	Records []Record
}

// Empty reports whether the result contains no rows.
func (r Result) Empty() bool {
	return len(r.Records) == 0
}

// Nodes returns every node entity across all rows and columns, in row
// order. Values that are not nodes (scalars, relationships, paths) are
// skipped; lists are walked so collect(n) projections contribute too.
func (r Result) Nodes() []Node {
	var nodes []Node
	for _, rec := range r.Records {
		for _, value := range rec {
			nodes = append(nodes, collectNodes(value)...)
		}
	}
	return nodes
}

func collectNodes(value any) []Node {
	switch v := value.(type) {
	case Node:
		return []Node{v}
	case []any:
		var nodes []Node
		for _, item := range v {
			nodes = append(nodes, collectNodes(item)...)
		}
		return nodes
	}
	return nil
}

// Config contains connection options for graph database clients.
type Config struct {
	// URI is the connection URI. The scheme selects transport security:
	//   - "bolt://host:port" for unencrypted connections
	//   - "bolt+s://host:port" for TLS encrypted connections
	//   - "bolt+ssc://host:port" for TLS with self-signed certificates
	//   - "neo4j://" or "neo4j+s://" for routing
	URI string

	// Username for authentication.
	Username string

	// Password for authentication.
	Password string

	// Database name to connect to. Empty string uses the default.
	Database string

	// MaxConnectionPoolSize limits the number of pooled connections.
	// Zero or negative values use the driver default.
	MaxConnectionPoolSize int

	// MaxConnectionLifetime bounds how long a pooled connection may live.
	MaxConnectionLifetime time.Duration

	// ConnectionTimeout is the maximum time to wait for a connection.
	ConnectionTimeout time.Duration
}

// DefaultConfig returns a Config with the conventional local defaults.
func DefaultConfig() Config {
	return Config{
		URI:                   "bolt://localhost:7687",
		Username:              "neo4j",
		Password:              "neo4j",
		Database:              "",
		MaxConnectionPoolSize: 100,
		MaxConnectionLifetime: time.Hour,
		ConnectionTimeout:     30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.URI == "" {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "URI cannot be empty")
	}
	if c.Username == "" {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "Username cannot be empty")
	}
	if c.Password == "" {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "Password cannot be empty")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(types.GRAPH_INVALID_CONFIG, "ConnectionTimeout must be positive")
	}
	return nil
}
