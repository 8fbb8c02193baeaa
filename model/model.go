// Package model maps typed in-memory nodes to property-graph records
// and back. A model type is declared once with its field validators,
// registered against a central registry, and from then on every
// attribute write is checked against the type's attribute gate and the
// field's validation rule before it reaches storage.
package model

import (
	"fmt"
	"sync"

	"github.com/scbunn/neomodel/types"
	"github.com/scbunn/neomodel/validator"
)

// Reserved attribute names. Names carrying the reserved prefix are
// control attributes: they steer upsert behavior and are never
// persisted as node properties.
const (
	// AttrID is the backend-assigned numeric identifier. It is not
	// stable across database restarts and is not safe for application
	// use; the mapping layer assigns it when loading rows.
	AttrID = "id"

	// AttrUID is the stable identity field, used as the natural key
	// for upserts. Safe for application use.
	AttrUID = "uid"

	// ReservedPrefix marks control attributes excluded from the
	// persisted property map.
	ReservedPrefix = "_"

	// AttrOnCreate holds a raw SET clause applied when a merge creates
	// the node (ON CREATE SET <clause>).
	AttrOnCreate = "_onCreate"

	// AttrOnMatch holds a raw SET clause applied when a merge matches
	// an existing node (ON MATCH SET <clause>).
	AttrOnMatch = "_onMatch"

	// AttrLabel overrides the node's label for one instance.
	AttrLabel = "_label"
)

// BaseTypeName is the name of the generic fallback type returned when
// a label resolves to no registered type.
const BaseTypeName = "Node"

// Definition declares a model type: its name, an optional label
// override, and its validator-backed fields keyed by field name.
// Registration binds each validator to its key.
type Definition struct {
	// Name is the type name, used as the node label unless Label is set.
	Name string

	// Label optionally overrides the label used for both serialization
	// and resolution.
	Label string

	// Fields maps field names to their validators. The implicit uid
	// (identity) and id (backend id) fields are added unless declared.
	Fields map[string]validator.Validator
}

// Type is a registered model type. It owns the attribute gate computed
// at registration and the bound field validators. Types are immutable
// after registration and safe for concurrent use.
type Type struct {
	name   string
	label  string
	fields map[string]validator.Validator
	gate   map[string]struct{}
}

// Name returns the registered type name.
func (t *Type) Name() string { return t.name }

// Label returns the label used for this type: the explicit override
// when one was declared, otherwise the type name.
func (t *Type) Label() string {
	if t.label != "" {
		return t.label
	}
	return t.name
}

// Allows reports whether the attribute name is in the type's gate.
func (t *Type) Allows(name string) bool {
	_, ok := t.gate[name]
	return ok
}

// Field returns the validator bound to name, if any.
func (t *Type) Field(name string) (validator.Validator, bool) {
	v, ok := t.fields[name]
	return v, ok
}

// New constructs an empty node of this type.
func (t *Type) New() *Node {
	return &Node{
		typ:   t,
		props: make(map[string]any),
	}
}

// FromValidatedProps constructs a node with every property assigned
// through the normal attribute-write path: gate check first, then the
// field's validation rule. The first rejected property aborts
// construction.
func (t *Type) FromValidatedProps(props map[string]any) (*Node, error) {
	n := t.New()
	for name, value := range props {
		if err := n.Set(name, value); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// FromRawProps constructs a node with properties copied directly into
// instance storage, bypassing the gate and all validators. This is the
// permissive load path: it tolerates legacy and partial data already in
// the database.
func (t *Type) FromRawProps(props map[string]any) *Node {
	n := t.New()
	for name, value := range props {
		n.props[name] = value
	}
	return n
}

// newType computes a Type from a definition: bind field validators,
// add the implicit identity and backend-id fields, and compute the
// attribute gate exactly once.
func newType(def Definition) (*Type, error) {
	if def.Name == "" {
		return nil, types.NewError(types.MODEL_INVALID_DEFINITION,
			"definition requires a type name")
	}

	fields := make(map[string]validator.Validator, len(def.Fields)+2)
	for name, v := range def.Fields {
		if name == "" {
			return nil, types.NewError(types.MODEL_INVALID_DEFINITION,
				fmt.Sprintf("type %s declares a field with an empty name", def.Name))
		}
		fields[name] = v.Bind(name)
	}
	if _, ok := fields[AttrUID]; !ok {
		fields[AttrUID] = validator.NewUUID().Bind(AttrUID)
	}
	if _, ok := fields[AttrID]; !ok {
		fields[AttrID] = validator.NewInteger(true).Bind(AttrID)
	}

	gate := make(map[string]struct{}, len(fields)+3)
	for name := range fields {
		gate[name] = struct{}{}
	}
	gate[AttrID] = struct{}{}
	gate[AttrOnCreate] = struct{}{}
	gate[AttrOnMatch] = struct{}{}
	gate[AttrLabel] = struct{}{}

	return &Type{
		name:   def.Name,
		label:  def.Label,
		fields: fields,
		gate:   gate,
	}, nil
}

// Registry maps label strings to registered types. Registration
// happens once per type at program initialization; resolution is
// read-only thereafter and safe for concurrent readers.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
	base  *Type
}

// NewRegistry creates an empty registry with the generic base type
// already available as the resolution fallback.
func NewRegistry() *Registry {
	base, err := newType(Definition{Name: BaseTypeName})
	if err != nil {
		panic(err)
	}
	return &Registry{
		types: make(map[string]*Type),
		base:  base,
	}
}

// Register computes a Type from the definition and registers it under
// its label. Registering the same label twice fails.
func (r *Registry) Register(def Definition) (*Type, error) {
	t, err := newType(def)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[t.Label()]; exists {
		return nil, types.NewError(types.MODEL_ALREADY_REGISTERED,
			fmt.Sprintf("label %s is already registered", t.Label()))
	}
	r.types[t.Label()] = t
	return t, nil
}

// MustRegister is like Register but panics on error. Intended for
// package-level model declarations.
func (r *Registry) MustRegister(def Definition) *Type {
	t, err := r.Register(def)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the registered type whose label matches, or the
// generic base type when no registration matches. Resolution never
// fails: unknown labels degrade to untyped nodes carrying raw
// properties.
func (r *Registry) Resolve(label string) *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.types[label]; ok {
		return t
	}
	return r.base
}

// Base returns the generic fallback type.
func (r *Registry) Base() *Type {
	return r.base
}
