package model

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/scbunn/neomodel/graph"
	"github.com/scbunn/neomodel/types"
)

// Store executes the mapping protocol against a graph client: it
// serializes nodes into merge statements and deserializes returned rows
// into typed nodes resolved through the registry. Every operation is a
// single blocking round trip; the client scopes its session to the
// call.
type Store struct {
	client   graph.Client
	registry *Registry
	logger   *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the structured logger used for query debugging.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store over the given client and registry.
func NewStore(client graph.Client, registry *Registry, opts ...StoreOption) *Store {
	s := &Store{
		client:   client,
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveOptions controls how a node is committed.
type SaveOptions struct {
	// Create uses a plain CREATE instead of the idempotent merge.
	Create bool
}

// SaveOption configures one Save call.
type SaveOption func(*SaveOptions)

// WithCreate commits the node with CREATE instead of MERGE. A new node
// is created on every call; no identity matching happens.
func WithCreate() SaveOption {
	return func(o *SaveOptions) {
		o.Create = true
	}
}

// Save commits the node to the database. The default is an upsert
// keyed on the node's identity field:
//
//	MERGE (node:<label> {uid: $uid})
//	[ON CREATE SET <clause>]
//	[ON MATCH SET <clause>]
//	SET node += $properties
//
// Re-saving an unchanged node produces no semantic change. A backend
// syntax error surfaces as GRAPH_QUERY_SYNTAX; a constraint violation
// propagates in its original backend form, recoverability being
// application-specific.
func (s *Store) Save(ctx context.Context, n *Node, opts ...SaveOption) error {
	var options SaveOptions
	for _, opt := range opts {
		opt(&options)
	}

	if options.Create {
		return s.createNode(ctx, n)
	}
	return s.mergeNode(ctx, n)
}

func (s *Store) mergeNode(ctx context.Context, n *Node) error {
	uid, err := n.UID()
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("MERGE (node:%s {uid: $uid})", n.Label()),
	}
	if clause, ok := n.props[AttrOnCreate]; ok {
		lines = append(lines, fmt.Sprintf("ON CREATE SET %v", clause))
	}
	if clause, ok := n.props[AttrOnMatch]; ok {
		lines = append(lines, fmt.Sprintf("ON MATCH SET %v", clause))
	}
	lines = append(lines, "SET node += $properties")

	query := strings.Join(lines, "\n")
	s.logger.Debug("merging node", "node", n.String(), "query", query)

	_, err = s.client.Write(ctx, query, map[string]any{
		"uid":        uid,
		"properties": n.Properties(),
	})
	return err
}

func (s *Store) createNode(ctx context.Context, n *Node) error {
	query := fmt.Sprintf("CREATE (node:%s $properties)", n.Label())
	s.logger.Debug("creating node", "node", n.String(), "query", query)

	_, err := s.client.Write(ctx, query, map[string]any{
		"properties": n.Properties(),
	})
	return err
}

// FindOptions controls a Find call.
type FindOptions struct {
	// Label scopes the match to nodes carrying this label. Empty
	// matches every node.
	Label string

	// Limit bounds the number of returned nodes. Zero means no limit.
	Limit int

	// Validate selects the strict load path: every returned property is
	// assigned through the gate and its field validator, and any
	// invalid stored property aborts the whole call. The default is the
	// permissive path, which copies properties directly and tolerates
	// legacy data.
	Validate bool
}

// Find returns nodes matching the options, resolved to their registered
// types by label. It fails with MODEL_NO_RESULTS when the query returns
// zero rows.
func (s *Store) Find(ctx context.Context, opts FindOptions) ([]*Node, error) {
	var b strings.Builder
	b.WriteString("MATCH (node)\n")
	if opts.Label != "" {
		fmt.Fprintf(&b, "WHERE node:%s\n", opts.Label)
	}
	b.WriteString("RETURN node")
	if opts.Limit > 0 {
		fmt.Fprintf(&b, "\nLIMIT %d", opts.Limit)
	}

	query := b.String()
	s.logger.Debug("finding nodes", "query", query)

	result, err := s.client.Read(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	if result.Empty() {
		return nil, types.NewError(types.MODEL_NO_RESULTS, "no nodes were found")
	}

	nodes := make([]*Node, 0, len(result.Records))
	for _, record := range result.Records {
		wire, ok := record["node"].(graph.Node)
		if !ok {
			return nil, types.NewError(types.GRAPH_RESULT_PARSING,
				"expected a node entity in column node")
		}
		node, err := s.load(wire, opts.Validate)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Filter executes an arbitrary read statement and returns every node
// entity found in the result, de-duplicated by backend identity and
// loaded permissively. Relationships between co-returned nodes are not
// reconstructed: the result is a flat, relationship-less set. It fails
// with MODEL_NO_RESULTS when the statement returns no nodes.
func (s *Store) Filter(ctx context.Context, cypher string, params map[string]any) ([]*Node, error) {
	s.logger.Debug("filtering nodes", "query", cypher)

	result, err := s.client.Read(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	wires := result.Nodes()
	if len(wires) == 0 {
		return nil, types.NewError(types.MODEL_NO_RESULTS, "no nodes were found")
	}

	seen := make(map[int64]struct{}, len(wires))
	nodes := make([]*Node, 0, len(wires))
	for _, wire := range wires {
		if _, dup := seen[wire.ID]; dup {
			continue
		}
		seen[wire.ID] = struct{}{}
		node, err := s.load(wire, false)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Search is the convenience boundary over Find: an empty result comes
// back as MODEL_NOT_FOUND instead of the raw MODEL_NO_RESULTS, so
// callers can translate it into an absent-resource response.
func (s *Store) Search(ctx context.Context, opts FindOptions) ([]*Node, error) {
	nodes, err := s.Find(ctx, opts)
	if err != nil {
		if types.HasCode(err, types.MODEL_NO_RESULTS) {
			return nil, types.WrapError(types.MODEL_NOT_FOUND, "no nodes found", err)
		}
		return nil, err
	}
	return nodes, nil
}

// SearchOne is Search with a single-result flag: it returns the first
// matching node only.
func (s *Store) SearchOne(ctx context.Context, opts FindOptions) (*Node, error) {
	if opts.Limit == 0 {
		opts.Limit = 1
	}
	nodes, err := s.Search(ctx, opts)
	if err != nil {
		return nil, err
	}
	return nodes[0], nil
}

// load resolves a wire node to its registered type by label, constructs
// it through the strict or permissive path, and records the backend id.
func (s *Store) load(wire graph.Node, validate bool) (*Node, error) {
	typ := s.registry.Resolve(wire.Label())

	var node *Node
	if validate {
		var err error
		node, err = typ.FromValidatedProps(wire.Props)
		if err != nil {
			return nil, err
		}
	} else {
		node = typ.FromRawProps(wire.Props)
	}

	if err := node.Set(AttrID, wire.ID); err != nil {
		return nil, err
	}
	return node, nil
}
