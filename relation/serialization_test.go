package relation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	r, err := New[string, string]()
	require.NoError(t, err)
	r.Put("apple", "red")
	r.Put("apple", "shiny")
	r.Put("melon", "red")

	data, err := r.ToJSON()
	require.NoError(t, err)

	loaded, err := New[string, string]()
	require.NoError(t, err)
	require.NoError(t, loaded.FromJSON(data))

	assert.Equal(t, r.Size(), loaded.Size())
	assert.ElementsMatch(t, r.Entries(), loaded.Entries())
	checkTranspose(t, loaded)
}

func TestFromJSONAppliesCardinality(t *testing.T) {
	r := NewIsomorphism[string, string]()
	require.NoError(t, r.FromJSON([]byte(`{"a":["x"],"b":["x"]}`)))

	// Both entries claim x; under 1:1 only one pairing survives.
	assert.Equal(t, 1, r.Size())
	assert.True(t, r.ContainsRange("x"))
	checkTranspose(t, r)
}

func TestFromJSONInvalid(t *testing.T) {
	r, err := New[string, string]()
	require.NoError(t, err)
	assert.Error(t, r.FromJSON([]byte(`["not","a","mapping"]`)))
	assert.True(t, r.Empty())
}

func TestJSONInterfaces(t *testing.T) {
	r, err := New(WithInit(map[string]int{"a": 1}))
	require.NoError(t, err)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1]}`, string(data))

	loaded, err := New[string, int]()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, loaded))
	assert.True(t, loaded.ContainsPair("a", 1))
}
