package graph

import (
	"context"
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/scbunn/neomodel/types"
)

// syntaxErrorCode is the server-side classification for a statement the
// database could not parse. Only this class is translated into a
// GRAPH_QUERY_SYNTAX error; every other backend failure, including
// constraint violations, propagates in its original form.
const syntaxErrorCode = "Neo.ClientError.Statement.SyntaxError"

// Neo4jClient implements Client over the official Neo4j driver.
// Sessions are scoped to a single Read or Write call and are always
// released before the call returns.
type Neo4jClient struct {
	config Config
	driver neo4j.DriverWithContext
}

// NewNeo4jClient creates a new Neo4j client with the given configuration.
// The client must be connected via Connect() before use.
func NewNeo4jClient(cfg Config) (*Neo4jClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Neo4jClient{
		config: cfg,
	}, nil
}

// Connect establishes a connection to the Neo4j database and verifies
// connectivity before returning.
func (c *Neo4jClient) Connect(ctx context.Context) error {
	auth := neo4j.BasicAuth(c.config.Username, c.config.Password, "")

	driverConfig := func(conf *config.Config) {
		if c.config.MaxConnectionPoolSize > 0 {
			conf.MaxConnectionPoolSize = c.config.MaxConnectionPoolSize
		}
		if c.config.MaxConnectionLifetime > 0 {
			conf.MaxConnectionLifetime = c.config.MaxConnectionLifetime
		}
		if c.config.ConnectionTimeout > 0 {
			conf.ConnectionAcquisitionTimeout = c.config.ConnectionTimeout
		}
		// Encryption is controlled by the URI scheme (bolt:// vs bolt+s://).
	}

	driver, err := neo4j.NewDriverWithContext(c.config.URI, auth, driverConfig)
	if err != nil {
		return types.WrapError(types.GRAPH_CONNECTION_FAILED,
			"failed to create driver", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return types.WrapError(types.GRAPH_CONNECTION_FAILED,
			"connectivity check failed", err)
	}

	c.driver = driver
	return nil
}

// Close releases all resources and closes the database connection.
func (c *Neo4jClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}

	if err := c.driver.Close(ctx); err != nil {
		return types.WrapError(types.GRAPH_CONNECTION_CLOSED,
			"failed to close driver", err)
	}

	c.driver = nil
	return nil
}

// Verify checks connectivity to the database.
func (c *Neo4jClient) Verify(ctx context.Context) error {
	if c.driver == nil {
		return types.NewError(types.GRAPH_CONNECTION_CLOSED, "driver not connected")
	}

	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return types.WrapError(types.GRAPH_CONNECTION_FAILED,
			"connectivity check failed", err)
	}

	return nil
}

// Read executes a Cypher statement in a read transaction.
func (c *Neo4jClient) Read(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.run(ctx, cypher, params, neo4j.AccessModeRead)
}

// Write executes a Cypher statement in a write transaction.
func (c *Neo4jClient) Write(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.run(ctx, cypher, params, neo4j.AccessModeWrite)
}

func (c *Neo4jClient) run(ctx context.Context, cypher string, params map[string]any, mode neo4j.AccessMode) (Result, error) {
	if c.driver == nil {
		return Result{}, types.NewError(types.GRAPH_CONNECTION_CLOSED, "driver not connected")
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
		AccessMode:   mode,
	})
	defer session.Close(ctx)

	work := func(tx neo4j.ManagedTransaction) (any, error) {
		neoResult, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}

		records, err := neoResult.Collect(ctx)
		if err != nil {
			return nil, err
		}

		return convertRecords(records), nil
	}

	var result any
	var err error
	if mode == neo4j.AccessModeRead {
		result, err = session.ExecuteRead(ctx, work)
	} else {
		result, err = session.ExecuteWrite(ctx, work)
	}

	if err != nil {
		return Result{}, translateError(err)
	}

	return result.(Result), nil
}

// translateError converts a backend syntax-error signal into a
// GRAPH_QUERY_SYNTAX error. All other errors pass through unchanged so
// callers can inspect constraint violations in their native form.
func translateError(err error) error {
	var neoErr *neo4j.Neo4jError
	if errors.As(err, &neoErr) && strings.EqualFold(neoErr.Code, syntaxErrorCode) {
		return types.WrapError(types.GRAPH_QUERY_SYNTAX, "statement rejected by backend", err)
	}
	return err
}

// convertRecords maps driver records into Result rows, translating node
// entities into graph.Node values. Lists are walked so projections like
// collect(n) keep their node contents; other values pass through.
func convertRecords(records []*neo4j.Record) Result {
	result := Result{
		Records: make([]Record, 0, len(records)),
	}

	for _, record := range records {
		rec := make(Record, len(record.Keys))
		for i, key := range record.Keys {
			rec[key] = convertValue(record.Values[i])
		}
		result.Records = append(result.Records, rec)
	}

	return result
}

func convertValue(value any) any {
	switch v := value.(type) {
	case dbtype.Node:
		return Node{
			ID:     v.Id,
			Labels: v.Labels,
			Props:  v.Props,
		}
	case []any:
		converted := make([]any, len(v))
		for i, item := range v {
			converted[i] = convertValue(item)
		}
		return converted
	}
	return value
}
