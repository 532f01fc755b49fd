package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeDefaults(t *testing.T) {
	typ := &Type{Name: "Widget"}
	typ.finalize()

	assert.Equal(t, "widget", typ.RelationKey)
	assert.Equal(t, [][]string{{"id", "name"}}, typ.Repr)
}

func TestTypeReadonlyIncludesRelationsAndIncludes(t *testing.T) {
	typ := &Type{
		Name:      "Project",
		Relations: []string{"issues"},
		Includes:  []string{"trackers"},
	}

	assert.True(t, typ.readonly("issues", true))
	assert.True(t, typ.readonly("issues", false))
	assert.True(t, typ.readonly("trackers", true))
	assert.True(t, typ.readonly("id", true))
	assert.False(t, typ.readonly("name", true))
}

func TestTypeUpdateReadonlyInheritsCreateSet(t *testing.T) {
	typ := &Type{
		Name:           "Membership",
		CreateReadonly: append(BaseCreateReadonly(), "roles"),
	}
	assert.True(t, typ.readonly("roles", true))
	assert.True(t, typ.readonly("roles", false))

	distinct := &Type{
		Name:           "Identified",
		CreateReadonly: BaseCreateReadonly(),
		UpdateReadonly: append(BaseCreateReadonly(), "identifier"),
	}
	assert.False(t, distinct.readonly("identifier", true))
	assert.True(t, distinct.readonly("identifier", false))
}

func TestRegistry(t *testing.T) {
	typ := &Type{Name: "RegistryProbe"}
	Register(typ)

	got, err := Lookup("RegistryProbe")
	require.NoError(t, err)
	assert.Same(t, typ, got)

	_, err = Lookup("NoSuchType")
	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NoSuchType", unknown.Name)

	assert.Panics(t, func() {
		Register(&Type{Name: "RegistryProbe"})
	})
}
