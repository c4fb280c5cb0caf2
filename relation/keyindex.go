package relation

import (
	"mlib.com/relate/containers/list"
	"mlib.com/relate/containers/sets/hashset"
)

// keyIndex is one side of the dual index: a map from key to the set of
// keys associated with it, optionally tracking key insertion order.
// No entry ever maps to an empty set; removal primitives delete any
// entry whose set they drain.
type keyIndex[K comparable, V comparable] struct {
	items map[K]*hashset.Set[V]
	order *list.List[K] // nil when unordered
	nodes map[K]*list.Element[K]
}

func newKeyIndex[K comparable, V comparable](ordered bool) *keyIndex[K, V] {
	x := &keyIndex[K, V]{items: make(map[K]*hashset.Set[V])}
	if ordered {
		x.order = list.New[K]()
		x.nodes = make(map[K]*list.Element[K])
	}
	return x
}

func (x *keyIndex[K, V]) ordered() bool {
	return x.order != nil
}

// add associates v with k, creating the value set on first use.
func (x *keyIndex[K, V]) add(k K, v V) {
	set, found := x.items[k]
	if !found {
		set = hashset.New[V]()
		x.items[k] = set
		if x.order != nil {
			x.nodes[k] = x.order.PushBack(k)
		}
	}
	set.Add(v)
}

func (x *keyIndex[K, V]) get(k K) (*hashset.Set[V], bool) {
	set, found := x.items[k]
	return set, found
}

func (x *keyIndex[K, V]) contains(k K) bool {
	_, found := x.items[k]
	return found
}

// deleteKey removes k and its value set entirely.
func (x *keyIndex[K, V]) deleteKey(k K) {
	delete(x.items, k)
	if x.order != nil {
		if e, found := x.nodes[k]; found {
			x.order.Remove(e)
			delete(x.nodes, k)
		}
	}
}

// dropValue removes ref from every value set in the index; entries
// whose set is left empty are deleted. This is the cascade cleaner run
// against one index after a key is removed from the other.
func (x *keyIndex[K, V]) dropValue(ref V) {
	var empty []K
	for k, set := range x.items {
		if set.Contains(ref) {
			set.Remove(ref)
		}
		if set.Empty() {
			empty = append(empty, k) // mark for removal
		}
	}
	for _, k := range empty {
		x.deleteKey(k)
	}
}

func (x *keyIndex[K, V]) size() int {
	return len(x.items)
}

// keys returns the index keys, in insertion order when ordered.
func (x *keyIndex[K, V]) keys() []K {
	keys := make([]K, 0, len(x.items))
	if x.order != nil {
		for e := x.order.Front(); e != nil; e = e.Next() {
			keys = append(keys, e.Value)
		}
		return keys
	}
	for k := range x.items {
		keys = append(keys, k)
	}
	return keys
}

func (x *keyIndex[K, V]) clear() {
	x.items = make(map[K]*hashset.Set[V])
	if x.order != nil {
		x.order.Init()
		x.nodes = make(map[K]*list.Element[K])
	}
}

// copyFrom merges every entry of other into x. The value sets are
// duplicated, their elements are not.
func (x *keyIndex[K, V]) copyFrom(other *keyIndex[K, V]) {
	for _, k := range other.keys() {
		if set, found := other.items[k]; found {
			x.items[k] = set.Copy()
			if x.order != nil {
				x.nodes[k] = x.order.PushBack(k)
			}
		}
	}
}
