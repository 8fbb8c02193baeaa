package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scbunn/neomodel/types"
)

func TestNewNeo4jClient_ValidatesConfig(t *testing.T) {
	_, err := NewNeo4jClient(Config{})
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.GRAPH_INVALID_CONFIG))

	client, err := NewNeo4jClient(DefaultConfig())
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNeo4jClient_RequiresConnection(t *testing.T) {
	client, err := NewNeo4jClient(DefaultConfig())
	require.NoError(t, err)

	_, err = client.Read(context.Background(), "MATCH (n) RETURN n", nil)
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.GRAPH_CONNECTION_CLOSED))

	err = client.Verify(context.Background())
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.GRAPH_CONNECTION_CLOSED))

	// Closing an unconnected client is a no-op.
	assert.NoError(t, client.Close(context.Background()))
}

func TestTranslateError(t *testing.T) {
	syntaxErr := &neo4j.Neo4jError{
		Code: "Neo.ClientError.Statement.SyntaxError",
		Msg:  "Invalid input",
	}
	err := translateError(fmt.Errorf("run failed: %w", syntaxErr))
	assert.True(t, types.HasCode(err, types.GRAPH_QUERY_SYNTAX))
	// The backend signal stays reachable for callers that need detail.
	assert.True(t, errors.Is(err, syntaxErr) || errors.As(err, &syntaxErr))

	// Constraint violations are not translated.
	constraintErr := &neo4j.Neo4jError{
		Code: "Neo.ClientError.Schema.ConstraintValidationFailed",
		Msg:  "already exists",
	}
	err = translateError(constraintErr)
	assert.Same(t, error(constraintErr), err)

	// Arbitrary errors pass through untouched.
	plain := errors.New("boom")
	assert.Same(t, plain, translateError(plain))
}

func TestConvertRecords(t *testing.T) {
	records := []*neo4j.Record{
		{
			Keys: []string{"node", "count"},
			Values: []any{
				dbtype.Node{
					Id:     7,
					Labels: []string{"Person"},
					Props:  map[string]any{"name": "Ada"},
				},
				int64(1),
			},
		},
		{
			Keys: []string{"collected"},
			Values: []any{
				[]any{
					dbtype.Node{Id: 8, Labels: []string{"Tag"}},
					"scalar",
				},
			},
		},
	}

	result := convertRecords(records)
	require.Len(t, result.Records, 2)

	node, ok := result.Records[0]["node"].(Node)
	require.True(t, ok)
	assert.Equal(t, int64(7), node.ID)
	assert.Equal(t, []string{"Person"}, node.Labels)
	assert.Equal(t, "Ada", node.Props["name"])
	assert.Equal(t, int64(1), result.Records[0]["count"])

	list, ok := result.Records[1]["collected"].([]any)
	require.True(t, ok)
	inner, ok := list[0].(Node)
	require.True(t, ok)
	assert.Equal(t, int64(8), inner.ID)
	assert.Equal(t, "scalar", list[1])
}

func TestConvertRecords_Empty(t *testing.T) {
	result := convertRecords(nil)
	assert.True(t, result.Empty())
}
