// Package relation implements a discrete mathematical relation: a
// pairing of elements of one set, the domain, with elements of
// another, the range. The forward mapping (domain to range) and the
// inverse mapping (range to domain) are maintained in lockstep, so
// finding the domain keys associated with a range value is as cheap as
// the forward lookup. A relation can perform a variety of common
// tasks:
//
//   - Inversion: quickly find the values (range) associated with a key (domain)
//   - Partitioning: group values into unique buckets
//   - Aliasing: maintain a unique pairing between keys and values
//   - Tagging: associate two sets in an arbitrary manner
//
// These roughly correspond to the four cardinalities of a relation,
// see Cardinality.
//
// Structure is not thread safe. An inverted relation shares storage
// with its original, so external locking must treat the pair as one
// lock domain.
package relation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"mlib.com/relate/containers"
)

var (
	// ErrKeyNotFound is returned by lookups and removals naming a key
	// absent from the relevant index.
	ErrKeyNotFound = errors.New("key not found in relation")
	// ErrInvalidCardinality is returned when a cardinality token is not
	// one of the four recognized values.
	ErrInvalidCardinality = errors.New("invalid cardinality")
	// ErrInvalidArgument is returned by Extend when the argument does
	// not behave as a key/value mapping.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Assert Container implementation (a relation is a container of its
// distinct range values).
var _ containers.Container[int] = (*Relation[string, int])(nil)

// Entry is a single domain/range pairing.
type Entry[D comparable, R comparable] struct {
	Domain D
	Range  R
}

// Relation pairs elements of a domain set with elements of a range
// set under a cardinality policy. Every mutation keeps the forward and
// inverse indices mutual transposes of each other: t is in forward[d]
// exactly when d is in inverse[t].
type Relation[D comparable, R comparable] struct {
	forward     *keyIndex[D, R]
	inverse     *keyIndex[R, D]
	cardinality Cardinality
}

// Option represents the optional function.
type Option[D comparable, R comparable] func(opts *Options[D, R])

// Options contains all options which will be applied when instantiating a relation.
type Options[D comparable, R comparable] struct {
	// Cardinality is the uniqueness policy enforced on insertion.
	// The default is M:N, an unrestricted pairing.
	Cardinality Cardinality

	// Ordered makes both indices preserve key insertion order. Only
	// key order is preserved, not order within a value set.
	Ordered bool

	// Init seeds the relation through the standard insertion path.
	Init map[D]R
}

func loadOptions[D comparable, R comparable](options ...Option[D, R]) *Options[D, R] {
	opts := &Options[D, R]{Cardinality: ManyToMany}
	for _, option := range options {
		option(opts)
	}
	return opts
}

// WithCardinality sets up the uniqueness policy of the relation.
func WithCardinality[D comparable, R comparable](c Cardinality) Option[D, R] {
	return func(opts *Options[D, R]) {
		opts.Cardinality = c
	}
}

// WithOrdered indicates whether the relation should preserve key insertion order.
func WithOrdered[D comparable, R comparable](ordered bool) Option[D, R] {
	return func(opts *Options[D, R]) {
		opts.Ordered = ordered
	}
}

// WithInit sets up initial data inserted during construction.
func WithInit[D comparable, R comparable](init map[D]R) Option[D, R] {
	return func(opts *Options[D, R]) {
		opts.Init = init
	}
}

// New instantiates a relation. Construction fails with
// ErrInvalidCardinality if an unrecognized cardinality was supplied;
// no partial relation is returned.
func New[D comparable, R comparable](options ...Option[D, R]) (*Relation[D, R], error) {
	opts := loadOptions(options...)
	if !opts.Cardinality.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCardinality, string(opts.Cardinality))
	}
	r := &Relation[D, R]{
		forward:     newKeyIndex[D, R](opts.Ordered),
		inverse:     newKeyIndex[R, D](opts.Ordered),
		cardinality: opts.Cardinality,
	}
	r.ExtendMap(opts.Init)
	return r, nil
}

// NewIsomorphism instantiates a 1:1 relation: each domain key and each
// range key participate in at most one pairing.
func NewIsomorphism[D comparable, R comparable](options ...Option[D, R]) *Relation[D, R] {
	r, _ := New(append(options, WithCardinality[D, R](OneToOne))...)
	return r
}

// NewFunction instantiates a M:1 relation: each domain key maps to
// exactly one range key, possibly shared with other domain keys.
func NewFunction[D comparable, R comparable](options ...Option[D, R]) *Relation[D, R] {
	r, _ := New(append(options, WithCardinality[D, R](ManyToOne))...)
	return r
}

// NewPartition instantiates a 1:M relation: each range key is claimed
// by exactly one domain key.
func NewPartition[D comparable, R comparable](options ...Option[D, R]) *Relation[D, R] {
	r, _ := New(append(options, WithCardinality[D, R](OneToMany))...)
	return r
}

// Put pairs domain key d with range key t. Behavior depends on cardinality:
//   - M:1: assign/overwrite the range of d, similar to map behavior
//   - 1:1: assign d uniquely to t, removing the pairings of both beforehand
//   - M:N: add t to the values of d, add d to the values of t
//   - 1:M: add t to the values of d, removing t from other domain keys beforehand
func (r *Relation[D, R]) Put(d D, t R) {
	r.PutAll([]D{d}, []R{t})
}

// PutAll pairs every domain key with every range key in the Cartesian
// product of the two slices, each pair inserted as by Put. Where the
// cardinality demands eviction, the domain side is evicted fully
// before the range side is examined.
func (r *Relation[D, R]) PutAll(domains []D, targets []R) {
	for _, d := range domains {
		for _, t := range targets {
			if r.cardinality.evictsDomain() && r.forward.contains(d) {
				r.removeDomain(d)
			}
			if r.cardinality.evictsRange() && r.inverse.contains(t) {
				r.removeRange(t)
			}
			r.forward.add(d, t)
			r.inverse.add(t, d)
		}
	}
}

func (r *Relation[D, R]) removeDomain(d D) {
	r.forward.deleteKey(d)
	r.inverse.dropValue(d)
}

func (r *Relation[D, R]) removeRange(t R) {
	r.inverse.deleteKey(t)
	r.forward.dropValue(t)
}

// RemoveDomain deletes every pairing of domain key d, cascading into
// the inverse index. Fails with ErrKeyNotFound if d is absent.
func (r *Relation[D, R]) RemoveDomain(d D) error {
	if !r.forward.contains(d) {
		return fmt.Errorf("%w: domain key %v", ErrKeyNotFound, d)
	}
	r.removeDomain(d)
	return nil
}

// RemoveRange deletes every pairing of range key t, cascading into the
// forward index. Fails with ErrKeyNotFound if t is absent.
func (r *Relation[D, R]) RemoveRange(t R) error {
	if !r.inverse.contains(t) {
		return fmt.Errorf("%w: range key %v", ErrKeyNotFound, t)
	}
	r.removeRange(t)
	return nil
}

// Pop removes domain key d and returns the range values it held.
// Fails with ErrKeyNotFound if d is absent.
func (r *Relation[D, R]) Pop(d D) ([]R, error) {
	set, found := r.forward.get(d)
	if !found {
		return nil, fmt.Errorf("%w: domain key %v", ErrKeyNotFound, d)
	}
	values := set.Values()
	r.removeDomain(d)
	return values, nil
}

// Get returns every range value paired with domain key d. Fails with
// ErrKeyNotFound if d is absent. The slice order is meaningless.
func (r *Relation[D, R]) Get(d D) ([]R, error) {
	set, found := r.forward.get(d)
	if !found {
		return nil, fmt.Errorf("%w: domain key %v", ErrKeyNotFound, d)
	}
	return set.Values(), nil
}

// GetOne returns a single range value paired with domain key d. Under
// 1:1 and M:1 the policy guarantees it is the only one; under other
// cardinalities an arbitrary element of the value set is returned.
// Fails with ErrKeyNotFound if d is absent.
func (r *Relation[D, R]) GetOne(d D) (R, error) {
	var zero R
	set, found := r.forward.get(d)
	if !found {
		return zero, fmt.Errorf("%w: domain key %v", ErrKeyNotFound, d)
	}
	for _, t := range set.Values() {
		return t, nil
	}
	return zero, nil // unreachable: no entry maps to an empty set
}

// ContainsDomain reports whether domain key d holds any pairing.
func (r *Relation[D, R]) ContainsDomain(d D) bool {
	return r.forward.contains(d)
}

// ContainsRange reports whether range key t participates in any pairing.
func (r *Relation[D, R]) ContainsRange(t R) bool {
	return r.inverse.contains(t)
}

// ContainsPair reports whether the pairing (d, t) is present.
func (r *Relation[D, R]) ContainsPair(d D, t R) bool {
	set, found := r.forward.get(d)
	return found && set.Contains(t)
}

// Invert returns a view of the relation with the domain and range
// roles swapped and the cardinality inverted accordingly. The view
// aliases the receiver's indices rather than copying them: mutations
// through either relation are visible through both.
func (r *Relation[D, R]) Invert() *Relation[R, D] {
	return &Relation[R, D]{
		forward:     r.inverse,
		inverse:     r.forward,
		cardinality: r.cardinality.Invert(),
	}
}

// Copy returns a one-level copy of the relation: fresh indices and
// fresh value sets holding the same elements.
func (r *Relation[D, R]) Copy() *Relation[D, R] {
	c := &Relation[D, R]{
		forward:     newKeyIndex[D, R](r.Ordered()),
		inverse:     newKeyIndex[R, D](r.Ordered()),
		cardinality: r.cardinality,
	}
	c.forward.copyFrom(r.forward)
	c.inverse.copyFrom(r.inverse)
	return c
}

// Merge inserts every pairing of other into r and returns r. The
// receiver's cardinality applies, not other's.
func (r *Relation[D, R]) Merge(other *Relation[D, R]) *Relation[D, R] {
	for _, d := range other.forward.keys() {
		if set, found := other.forward.get(d); found {
			r.PutAll([]D{d}, set.Values())
		}
	}
	return r
}

// ExtendMap inserts every pair of m into r and returns r.
func (r *Relation[D, R]) ExtendMap(m map[D]R) *Relation[D, R] {
	for d, t := range m {
		r.Put(d, t)
	}
	return r
}

// Size returns the number of distinct domain keys.
func (r *Relation[D, R]) Size() int {
	return r.forward.size()
}

// Empty returns true if the relation holds no pairings.
func (r *Relation[D, R]) Empty() bool {
	return r.Size() == 0
}

// Keys returns all values in the domain, in insertion order when the
// relation is ordered.
func (r *Relation[D, R]) Keys() []D {
	return r.forward.keys()
}

// Values returns all distinct values in the range, in insertion order
// when the relation is ordered.
func (r *Relation[D, R]) Values() []R {
	return r.inverse.keys()
}

// Entries returns the flattened pairings of the relation.
func (r *Relation[D, R]) Entries() []Entry[D, R] {
	entries := make([]Entry[D, R], 0, r.Size())
	for _, d := range r.forward.keys() {
		if set, found := r.forward.get(d); found {
			for _, t := range set.Values() {
				entries = append(entries, Entry[D, R]{Domain: d, Range: t})
			}
		}
	}
	return entries
}

// Each calls the given function once for each domain key, passing the
// key and its range values.
func (r *Relation[D, R]) Each(f func(d D, targets []R)) {
	for _, d := range r.forward.keys() {
		if set, found := r.forward.get(d); found {
			f(d, set.Values())
		}
	}
}

// Clear removes every pairing. Cardinality and ordering mode are kept.
func (r *Relation[D, R]) Clear() {
	r.forward.clear()
	r.inverse.clear()
}

// Ordered reports whether the relation preserves key insertion order.
func (r *Relation[D, R]) Ordered() bool {
	return r.forward.ordered()
}

// Cardinality returns the active uniqueness policy.
func (r *Relation[D, R]) Cardinality() Cardinality {
	return r.cardinality
}

// SetCardinality replaces the uniqueness policy without re-validating
// existing pairings: pairings inserted under the old policy may
// violate the new one. This is a documented escape hatch, not a safe
// operation; to re-apply a policy, construct a new relation and Merge
// this one into it. Fails with ErrInvalidCardinality on an
// unrecognized token, leaving the policy unchanged.
func (r *Relation[D, R]) SetCardinality(c Cardinality) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCardinality, string(c))
	}
	r.cardinality = c
	return nil
}

// String returns a string representation of the relation: the
// cardinality, the forward entries after a "->" marker and the inverse
// entries after a "<-" marker, one "key:{v1,v2}" line per entry. Keys
// appear in index order; set elements are sorted by their rendering so
// the output is stable.
func (r *Relation[D, R]) String() string {
	lines := []string{string(r.cardinality), "->"}
	for _, d := range r.forward.keys() {
		if set, found := r.forward.get(d); found {
			lines = append(lines, fmt.Sprintf("%v:%s", d, setString(set.Values())))
		}
	}
	lines = append(lines, "<-")
	for _, t := range r.inverse.keys() {
		if set, found := r.inverse.get(t); found {
			lines = append(lines, fmt.Sprintf("%v:%s", t, setString(set.Values())))
		}
	}
	return strings.Join(lines, "\n")
}

func setString[T any](values []T) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = fmt.Sprintf("%v", v)
	}
	sort.Strings(items)
	return "{" + strings.Join(items, ",") + "}"
}
