package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scbunn/neomodel/types"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		URI:               "bolt://localhost:7687",
		Username:          "neo4j",
		Password:          "password",
		ConnectionTimeout: 30 * time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "empty URI", mutate: func(c *Config) { c.URI = "" }, wantErr: true},
		{name: "empty username", mutate: func(c *Config) { c.Username = "" }, wantErr: true},
		{name: "empty password", mutate: func(c *Config) { c.Password = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.ConnectionTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, types.HasCode(err, types.GRAPH_INVALID_CONFIG))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "bolt://localhost:7687", cfg.URI)
}

func TestNode_Label(t *testing.T) {
	assert.Equal(t, "Person", Node{Labels: []string{"Person", "Entity"}}.Label())
	assert.Equal(t, "", Node{}.Label())
}

func TestResult_Empty(t *testing.T) {
	assert.True(t, Result{}.Empty())
	assert.False(t, Result{Records: []Record{{}}}.Empty())
}

func TestResult_Nodes(t *testing.T) {
	result := Result{Records: []Record{
		{
			"a": Node{ID: 1, Labels: []string{"Person"}},
			"n": int64(5),
		},
		{
			"list": []any{
				Node{ID: 2, Labels: []string{"Tag"}},
				"scalar",
				[]any{Node{ID: 3, Labels: []string{"Tag"}}},
			},
		},
	}}

	nodes := result.Nodes()
	assert.Len(t, nodes, 3)

	ids := make(map[int64]bool)
	for _, n := range nodes {
		ids[n.ID] = true
	}
	assert.True(t, ids[1] && ids[2] && ids[3])
}
