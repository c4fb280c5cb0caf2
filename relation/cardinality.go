package relation

// Cardinality selects the uniqueness policy a relation enforces when a
// new pairing is inserted.
//
//   - M:1: a function, each range value having possibly multiple values in the domain
//   - 1:M: a categorization, where each element in the domain is associated with a unique group of values in the range
//   - 1:1: an isomorphism, where each element in the domain is uniquely identified with a single range value
//   - M:N: an unrestricted pairing of domain and range
type Cardinality string

const (
	// OneToOne pairs each domain key with at most one range key and vice versa.
	OneToOne Cardinality = "1:1"
	// OneToMany lets a domain key hold many range keys, each claimed by a single domain key.
	OneToMany Cardinality = "1:M"
	// ManyToOne maps each domain key to a single range key, possibly shared.
	ManyToOne Cardinality = "M:1"
	// ManyToMany places no restriction on pairings.
	ManyToMany Cardinality = "M:N"
)

// Valid reports whether c is one of the four recognized cardinalities.
func (c Cardinality) Valid() bool {
	switch c {
	case OneToOne, OneToMany, ManyToOne, ManyToMany:
		return true
	}
	return false
}

// Invert returns the cardinality of the inverted relation: 1:M and M:1
// swap, 1:1 and M:N are their own inverses.
func (c Cardinality) Invert() Cardinality {
	switch c {
	case OneToMany:
		return ManyToOne
	case ManyToOne:
		return OneToMany
	}
	return c
}

// evictsDomain reports whether inserting a pairing must first remove
// every existing pairing of its domain key.
func (c Cardinality) evictsDomain() bool {
	return c == OneToOne || c == ManyToOne
}

// evictsRange reports whether inserting a pairing must first remove
// every existing pairing of its range key.
func (c Cardinality) evictsRange() bool {
	return c == OneToOne || c == OneToMany
}

func (c Cardinality) String() string {
	return string(c)
}
