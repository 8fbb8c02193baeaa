package model

import (
	"fmt"
	"strings"

	"github.com/scbunn/neomodel/types"
	"github.com/scbunn/neomodel/validator"
)

// Node is one instance of a registered model type. All attribute
// writes flow through Set, which enforces the type's attribute gate and
// the field's validation rule atomically: a rejected value never
// reaches storage.
type Node struct {
	typ   *Type
	props map[string]any
}

// Type returns the node's registered type.
func (n *Node) Type() *Type { return n.typ }

// Label returns the label used when serializing this node: the
// instance-level override when one was set, otherwise the type's label.
func (n *Node) Label() string {
	if v, ok := n.props[AttrLabel]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return n.typ.Label()
}

// Set assigns value to the named attribute. The gate is checked first:
// a name outside the type's gate fails with MODEL_ATTRIBUTE_REJECTED
// before any validator runs. A gated name with a field validator is
// validated next; rejection fails with VALIDATION_TYPE_MISMATCH and
// leaves the stored value untouched.
func (n *Node) Set(name string, value any) error {
	if !n.typ.Allows(name) {
		return types.NewError(types.MODEL_ATTRIBUTE_REJECTED,
			fmt.Sprintf("%s has not defined attribute %s", n.typ.Name(), name))
	}
	if field, ok := n.typ.Field(name); ok {
		if err := field.Validate(value); err != nil {
			return err
		}
	}
	n.props[name] = value
	return nil
}

// Get returns the stored value for the named attribute. Reading an
// unset generator-backed field (the identity field) generates a value,
// stores it, and returns it; subsequent reads return the cached value.
// Reading any other unset attribute fails with MODEL_ATTRIBUTE_MISSING.
func (n *Node) Get(name string) (any, error) {
	if v, ok := n.props[name]; ok {
		return v, nil
	}
	if field, ok := n.typ.Field(name); ok {
		if gen, ok := field.(validator.Generator); ok {
			v := gen.Generate()
			n.props[name] = v
			return v, nil
		}
	}
	return nil, types.NewError(types.MODEL_ATTRIBUTE_MISSING,
		fmt.Sprintf("%s has no value for attribute %s", n.typ.Name(), name))
}

// Has reports whether the named attribute currently holds a value.
// It never triggers generation.
func (n *Node) Has(name string) bool {
	_, ok := n.props[name]
	return ok
}

// UID returns the node's stable identity, generating it on first read.
func (n *Node) UID() (string, error) {
	v, err := n.Get(AttrUID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", v), nil
}

// ID returns the backend-assigned numeric identifier and whether it
// has been set. Only the mapping layer assigns it.
func (n *Node) ID() (int64, bool) {
	v, ok := n.props[AttrID]
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case int64:
		return id, true
	case int:
		return int64(id), true
	}
	return 0, false
}

// SetOnCreate sets the raw SET clause applied when a merge creates the
// node. The clause may be a comma delimited list, e.g.
// "node.created = timestamp()".
func (n *Node) SetOnCreate(clause string) error {
	return n.Set(AttrOnCreate, clause)
}

// SetOnMatch sets the raw SET clause applied when a merge matches an
// existing node.
func (n *Node) SetOnMatch(clause string) error {
	return n.Set(AttrOnMatch, clause)
}

// SetLabel overrides the label for this instance only.
func (n *Node) SetLabel(label string) error {
	return n.Set(AttrLabel, label)
}

// Properties returns the attributes that persist to the database:
// every currently-set attribute except the backend id and the
// reserved-prefix control names. Generator-backed fields that are still
// unset are forced first, so the identity field is always present.
func (n *Node) Properties() map[string]any {
	for name, field := range n.typ.fields {
		if _, set := n.props[name]; set {
			continue
		}
		if gen, ok := field.(validator.Generator); ok {
			n.props[name] = gen.Generate()
		}
	}

	props := make(map[string]any, len(n.props))
	for name, value := range n.props {
		if name == AttrID || strings.HasPrefix(name, ReservedPrefix) {
			continue
		}
		props[name] = value
	}
	return props
}

// Document returns the node as a single-entry map keyed by its label,
// suitable for JSON responses.
func (n *Node) Document() map[string]any {
	return map[string]any{n.Label(): n.Properties()}
}

// String renders the node as "<Label: uid>", generating the identity
// if needed.
func (n *Node) String() string {
	uid, err := n.UID()
	if err != nil {
		uid = "?"
	}
	return fmt.Sprintf("<%s: %s>", n.Label(), uid)
}
