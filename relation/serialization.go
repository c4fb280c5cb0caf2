package relation

import (
	"encoding/json"

	"mlib.com/relate/containers"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Relation[string, string])(nil)
var _ containers.JSONDeserializer = (*Relation[string, string])(nil)

// ToJSON outputs the JSON representation of the relation's forward
// index, each domain key mapped to the list of its range values. The
// domain key type must be usable as a JSON object key.
func (r *Relation[D, R]) ToJSON() ([]byte, error) {
	elements := make(map[D][]R, r.Size())
	for _, d := range r.forward.keys() {
		if set, found := r.forward.get(d); found {
			elements[d] = set.Values()
		}
	}
	return json.Marshal(elements)
}

// FromJSON populates the relation from the input JSON representation.
// Pairings are inserted through the standard insertion path into the
// current contents, so the active cardinality policy applies and the
// indices stay mutual transposes.
func (r *Relation[D, R]) FromJSON(data []byte) error {
	elements := make(map[D][]R)
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	for d, targets := range elements {
		r.PutAll([]D{d}, targets)
	}
	return nil
}

// UnmarshalJSON @implements json.Unmarshaler
func (r *Relation[D, R]) UnmarshalJSON(bytes []byte) error {
	return r.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (r *Relation[D, R]) MarshalJSON() ([]byte, error) {
	return r.ToJSON()
}
