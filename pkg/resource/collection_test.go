package resource

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCollection(t *testing.T, payloads ...map[string]any) (*Collection, *int) {
	t.Helper()
	typ := plainType("Issue")
	m := newFakeManager(typ)

	calls := new(int)
	fetch := func() ([]*Resource, error) {
		*calls++
		items := make([]*Resource, 0, len(payloads))
		for _, p := range payloads {
			items = append(items, New(typ, m, p))
		}
		return items, nil
	}
	return NewCollection(typ, m, fetch), calls
}

func TestCollectionFetchesOnce(t *testing.T) {
	col, calls := issueCollection(t,
		map[string]any{"id": 1},
		map[string]any{"id": 2},
	)
	assert.Equal(t, 0, *calls)

	n, err := col.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := col.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	first, err := col.First()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Raw()["id"])

	assert.Equal(t, 1, *calls)
}

func TestCollectionFirstEmpty(t *testing.T) {
	col, _ := issueCollection(t)
	first, err := col.First()
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestCollectionFetchErrorPropagates(t *testing.T) {
	typ := plainType("Issue")
	m := newFakeManager(typ)
	col := NewCollection(typ, m, func() ([]*Resource, error) {
		return nil, fmt.Errorf("network down")
	})

	_, err := col.All()
	assert.EqualError(t, err, "network down")
}

func TestCollectionEach(t *testing.T) {
	col, _ := issueCollection(t,
		map[string]any{"id": 1},
		map[string]any{"id": 2},
		map[string]any{"id": 3},
	)

	var seen []any
	err := col.Each(func(r *Resource) error {
		seen = append(seen, r.Raw()["id"])
		if len(seen) == 2 {
			return fmt.Errorf("stop")
		}
		return nil
	})
	assert.EqualError(t, err, "stop")
	assert.Equal(t, []any{1, 2}, seen)
}

func TestCollectionWhere(t *testing.T) {
	col, _ := issueCollection(t,
		map[string]any{"id": 1, "done_ratio": 10},
		map[string]any{"id": 2, "done_ratio": 80},
		map[string]any{"id": 3, "done_ratio": 100},
	)

	filtered, err := col.Where("done_ratio > 50")
	require.NoError(t, err)

	all, err := filtered.All()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].Raw()["id"])
	assert.Equal(t, 3, all[1].Raw()["id"])
}

func TestCollectionWhereNestedAttribute(t *testing.T) {
	col, _ := issueCollection(t,
		map[string]any{"id": 1, "status": map[string]any{"name": "Open"}},
		map[string]any{"id": 2, "status": map[string]any{"name": "Closed"}},
	)

	filtered, err := col.Where(`status.name == "Closed"`)
	require.NoError(t, err)
	n, err := filtered.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollectionWhereUndefinedAttribute(t *testing.T) {
	// Attributes absent from the payload compare as nil instead of failing
	// the whole filter.
	col, _ := issueCollection(t,
		map[string]any{"id": 1},
		map[string]any{"id": 2, "category": "infra"},
	)

	filtered, err := col.Where(`category == "infra"`)
	require.NoError(t, err)
	n, err := filtered.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollectionWhereInvalidExpression(t *testing.T) {
	col, _ := issueCollection(t)
	_, err := col.Where("done_ratio >")
	assert.ErrorContains(t, err, "invalid filter expression")
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		id       any
		params   map[string]any
		want     string
	}{
		{"identity only", "/issues/{0}.json", 12, nil, "/issues/12.json"},
		{"string identity", "/wiki/{0}.json", "Setup", nil, "/wiki/Setup.json"},
		{"scope param", "/projects/{project_id}/issues.json", nil,
			map[string]any{"project_id": 3}, "/projects/3/issues.json"},
		{"both", "/projects/{project_id}/wiki/{0}.json", "Home",
			map[string]any{"project_id": "infra"}, "/projects/infra/wiki/Home.json"},
		{"unmatched placeholder stays", "/enumerations/{resource}.json", nil, nil,
			"/enumerations/{resource}.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPath(tt.template, tt.id, tt.params))
		})
	}
}
