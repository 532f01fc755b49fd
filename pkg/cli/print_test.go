package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawValue(t *testing.T) {
	assert.Equal(t, "Jane", rawValue(map[string]any{"id": 1, "name": "Jane"}))
	assert.Equal(t, "a, b", rawValue([]any{"a", "b"}))
	assert.Equal(t, "Jane, Ada", rawValue([]any{
		map[string]any{"id": 1, "name": "Jane"},
		map[string]any{"id": 2, "name": "Ada"},
	}))
	assert.Equal(t, "42", rawValue(42))
}
