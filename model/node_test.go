package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scbunn/neomodel/types"
	"github.com/scbunn/neomodel/validator"
)

func newPerson(t *testing.T) *Node {
	t.Helper()
	r := NewRegistry()
	return r.MustRegister(personDefinition()).New()
}

func TestNode_SetEnforcesGate(t *testing.T) {
	n := newPerson(t)

	require.NoError(t, n.Set("name", "Ada"))
	require.NoError(t, n.Set("age", 30))

	err := n.Set("salary", 100000)
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.MODEL_ATTRIBUTE_REJECTED))
	assert.False(t, n.Has("salary"))
}

func TestNode_SetValidatesBeforeStoring(t *testing.T) {
	n := newPerson(t)

	require.NoError(t, n.Set("age", 30))

	// Rejection leaves the previously stored value untouched.
	err := n.Set("age", -1)
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.VALIDATION_TYPE_MISMATCH))

	v, err := n.Get("age")
	require.NoError(t, err)
	assert.Equal(t, 30, v)
}

func TestNode_GetMissingAttribute(t *testing.T) {
	n := newPerson(t)

	_, err := n.Get("name")
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.MODEL_ATTRIBUTE_MISSING))
}

func TestNode_IdentityGeneration(t *testing.T) {
	n := newPerson(t)

	// First read generates; the default generator renders 36 chars.
	uid, err := n.UID()
	require.NoError(t, err)
	assert.Len(t, uid, 36)

	// Second read returns the identical cached value.
	again, err := n.UID()
	require.NoError(t, err)
	assert.Equal(t, uid, again)
}

func TestNode_AssignmentSuppressesGeneration(t *testing.T) {
	n := newPerson(t)

	require.NoError(t, n.Set(AttrUID, "explicit-id"))

	uid, err := n.UID()
	require.NoError(t, err)
	assert.Equal(t, "explicit-id", uid)
}

func TestNode_PluggableGeneratorMemoizedPerInstance(t *testing.T) {
	calls := 0
	r := NewRegistry()
	typ := r.MustRegister(Definition{
		Name: "Counter",
		Fields: map[string]validator.Validator{
			AttrUID: validator.UUID{New: func() any {
				calls++
				return calls
			}},
		},
	})

	a := typ.New()
	b := typ.New()

	first, err := a.Get(AttrUID)
	require.NoError(t, err)
	second, err := a.Get(AttrUID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := b.Get(AttrUID)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
	assert.Equal(t, 2, calls)
}

func TestNode_Properties(t *testing.T) {
	n := newPerson(t)
	require.NoError(t, n.Set("name", "Ada"))
	require.NoError(t, n.Set("age", 30))
	require.NoError(t, n.Set(AttrID, int64(7)))
	require.NoError(t, n.SetOnCreate("node.created = timestamp()"))

	props := n.Properties()

	// The backend id and reserved control names never persist.
	assert.NotContains(t, props, AttrID)
	assert.NotContains(t, props, AttrOnCreate)

	assert.Equal(t, "Ada", props["name"])
	assert.Equal(t, 30, props["age"])

	// The identity field is forced so merge keys always exist.
	assert.Contains(t, props, AttrUID)
}

func TestNode_RoundTrip(t *testing.T) {
	r := NewRegistry()
	typ := r.MustRegister(personDefinition())

	n := typ.New()
	require.NoError(t, n.Set("name", "Ada"))
	require.NoError(t, n.Set("age", 30))

	props := n.Properties()
	loaded := typ.FromRawProps(props)

	// Permissive reload reproduces the same field values.
	assert.Equal(t, props, loaded.Properties())
}

func TestNode_LabelOverride(t *testing.T) {
	n := newPerson(t)
	assert.Equal(t, "Person", n.Label())

	require.NoError(t, n.SetLabel("Employee"))
	assert.Equal(t, "Employee", n.Label())
}

func TestNode_FromValidatedProps(t *testing.T) {
	r := NewRegistry()
	typ := r.MustRegister(personDefinition())

	n, err := typ.FromValidatedProps(map[string]any{"name": "Ada", "age": 30})
	require.NoError(t, err)
	v, err := n.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	// Strict construction aborts on the first invalid property.
	_, err = typ.FromValidatedProps(map[string]any{"age": "thirty"})
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.VALIDATION_TYPE_MISMATCH))

	_, err = typ.FromValidatedProps(map[string]any{"salary": 1})
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.MODEL_ATTRIBUTE_REJECTED))
}

func TestNode_FromRawPropsBypassesValidation(t *testing.T) {
	r := NewRegistry()
	typ := r.MustRegister(personDefinition())

	// Legacy data with an out-of-gate property and a wrong-typed field.
	n := typ.FromRawProps(map[string]any{"age": "thirty", "legacy": true})

	v, err := n.Get("age")
	require.NoError(t, err)
	assert.Equal(t, "thirty", v)
	assert.True(t, n.Has("legacy"))
}

func TestNode_Document(t *testing.T) {
	n := newPerson(t)
	require.NoError(t, n.Set("name", "Ada"))

	doc := n.Document()
	require.Contains(t, doc, "Person")

	props, ok := doc["Person"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", props["name"])
	assert.Contains(t, props, AttrUID)
}

func TestNode_String(t *testing.T) {
	n := newPerson(t)
	require.NoError(t, n.Set(AttrUID, "abc-123"))
	assert.Equal(t, "<Person: abc-123>", n.String())
}

func TestNode_BackendID(t *testing.T) {
	n := newPerson(t)

	_, ok := n.ID()
	assert.False(t, ok)

	require.NoError(t, n.Set(AttrID, int64(42)))
	id, ok := n.ID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	// The backend id validator rejects non-integers.
	err := n.Set(AttrID, "42")
	require.Error(t, err)
	assert.True(t, types.HasCode(err, types.VALIDATION_TYPE_MISMATCH))
}
