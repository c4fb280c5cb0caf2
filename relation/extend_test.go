package relation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendTypedMap(t *testing.T) {
	r, err := New[string, string]()
	require.NoError(t, err)
	require.NoError(t, r.Extend(map[string]string{"apple": "red", "banana": "yellow"}))
	assert.Equal(t, 2, r.Size())
	assert.True(t, r.ContainsPair("apple", "red"))
}

func TestExtendInterfaceValues(t *testing.T) {
	r, err := New[string, string]()
	require.NoError(t, err)
	require.NoError(t, r.Extend(map[string]interface{}{
		"a": "x",
		"b": []string{"y", "z"},
	}))
	assert.True(t, r.ContainsPair("a", "x"))
	assert.True(t, r.ContainsPair("b", "y"))
	assert.True(t, r.ContainsPair("b", "z"))
	checkTranspose(t, r)
}

func TestExtendNotAMapping(t *testing.T) {
	r, err := New[string, string]()
	require.NoError(t, err)
	assert.True(t, errors.Is(r.Extend(42), ErrInvalidArgument))
	assert.True(t, errors.Is(r.Extend("fruit"), ErrInvalidArgument))
	assert.True(t, errors.Is(r.Extend(nil), ErrInvalidArgument))
	assert.True(t, errors.Is(r.Extend([]string{"a", "b"}), ErrInvalidArgument))
}

func TestExtendWrongKeyType(t *testing.T) {
	r, err := New[string, string]()
	require.NoError(t, err)
	assert.True(t, errors.Is(r.Extend(map[int]string{1: "x"}), ErrInvalidArgument))
	assert.True(t, r.Empty())
}

func TestExtendWrongValueType(t *testing.T) {
	r, err := New[string, string]()
	require.NoError(t, err)
	r.Put("kept", "pair")

	err = r.Extend(map[string]interface{}{"a": "x", "b": 3})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	// Validation happens before any insertion: even the well-typed
	// entry must not have been merged.
	assert.Equal(t, 1, r.Size())
	assert.True(t, r.ContainsPair("kept", "pair"))
}

func TestExtendAppliesCardinality(t *testing.T) {
	r := NewFunction[string, int]()
	r.Put("a", 1)
	require.NoError(t, r.Extend(map[string]int{"a": 2}))
	two, err := r.GetOne("a")
	require.NoError(t, err)
	assert.Equal(t, 2, two)
}
