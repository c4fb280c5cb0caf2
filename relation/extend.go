package relation

import (
	"fmt"
	"reflect"
)

// Extend merges an arbitrary key/value mapping into the relation,
// inserting each pair through the standard insertion path. The
// argument must be a map whose keys are assignable to the domain type
// and whose values are assignable to the range type or to a slice of
// it (each element then paired with the key). Anything else fails with
// ErrInvalidArgument. The argument is validated in full before any
// pairing is inserted, so a failed call leaves the relation untouched.
//
// Statically typed callers should prefer ExtendMap or Merge; Extend
// exists for interface-valued maps such as map[string]interface{}.
func (r *Relation[D, R]) Extend(mapping interface{}) error {
	if mapping == nil {
		return fmt.Errorf("%w: cannot extend relation using <nil>", ErrInvalidArgument)
	}
	v := reflect.ValueOf(mapping)
	if v.Kind() != reflect.Map {
		return fmt.Errorf("%w: cannot extend relation using %T", ErrInvalidArgument, mapping)
	}

	domainType := reflect.TypeOf((*D)(nil)).Elem()
	rangeType := reflect.TypeOf((*R)(nil)).Elem()

	type pairing struct {
		domain  D
		targets []R
	}
	pairings := make([]pairing, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		key := concrete(iter.Key())
		if !key.IsValid() || !key.Type().AssignableTo(domainType) {
			return fmt.Errorf("%w: key %v is not a %v", ErrInvalidArgument, iter.Key(), domainType)
		}
		p := pairing{domain: key.Convert(domainType).Interface().(D)}

		value := concrete(iter.Value())
		switch {
		case value.IsValid() && value.Type().AssignableTo(rangeType):
			p.targets = []R{value.Convert(rangeType).Interface().(R)}
		case value.IsValid() && value.Kind() == reflect.Slice && value.Type().Elem().AssignableTo(rangeType):
			for i := 0; i < value.Len(); i++ {
				p.targets = append(p.targets, value.Index(i).Convert(rangeType).Interface().(R))
			}
		default:
			return fmt.Errorf("%w: value %v is not a %v", ErrInvalidArgument, iter.Value(), rangeType)
		}
		pairings = append(pairings, p)
	}

	for _, p := range pairings {
		r.PutAll([]D{p.domain}, p.targets)
	}
	return nil
}

// concrete unwraps an interface-valued reflect.Value to its dynamic
// value. A nil interface unwraps to an invalid Value.
func concrete(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		return v.Elem()
	}
	return v
}
