package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinalityValid(t *testing.T) {
	for _, c := range []Cardinality{OneToOne, OneToMany, ManyToOne, ManyToMany} {
		assert.True(t, c.Valid(), "%s", c)
	}
	for _, c := range []Cardinality{"", "1:N", "m:n", "one-to-one"} {
		assert.False(t, c.Valid(), "%s", c)
	}
}

func TestCardinalityInvert(t *testing.T) {
	assert.Equal(t, OneToOne, OneToOne.Invert())
	assert.Equal(t, ManyToOne, OneToMany.Invert())
	assert.Equal(t, OneToMany, ManyToOne.Invert())
	assert.Equal(t, ManyToMany, ManyToMany.Invert())
}

func TestCardinalityEvictionPolicy(t *testing.T) {
	tests := []struct {
		cardinality  Cardinality
		evictsDomain bool
		evictsRange  bool
	}{
		{OneToOne, true, true},
		{ManyToOne, true, false},
		{OneToMany, false, true},
		{ManyToMany, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.evictsDomain, tt.cardinality.evictsDomain(), "%s domain", tt.cardinality)
		assert.Equal(t, tt.evictsRange, tt.cardinality.evictsRange(), "%s range", tt.cardinality)
	}
}
