package models

import "encoding/json"

// Record is the generic JSON shape of one stored entity inside a collection.
// Keys not known to the typed records are preserved as-is.
type Record map[string]any

// ID returns the record's id, or "" when unset.
func (r Record) ID() string {
	s, _ := r["id"].(string)
	return s
}

// CreatedAt returns the creation timestamp in milliseconds since epoch,
// or 0 when unset. JSON numbers decode as float64, so both are accepted.
func (r Record) CreatedAt() int64 {
	switch v := r["createdAt"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of the record with the patch fields laid over it.
// Patch fields overwrite, unspecified fields are retained.
func (r Record) Merge(patch Record) Record {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// ToRecord converts a typed record into its generic shape via JSON.
func ToRecord(v any) (Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// MustRecord is ToRecord for values known to be JSON-serializable,
// panicking otherwise. Intended for seed data and tests.
func MustRecord(v any) Record {
	r, err := ToRecord(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Decode converts a generic record into a typed one via JSON.
func Decode[T any](r Record) (T, error) {
	var out T
	raw, err := json.Marshal(r)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

// DecodeAll converts a slice of generic records, dropping records that fail
// to decode and reporting each failure through report (which may be nil).
func DecodeAll[T any](rs []Record, report func(r Record, err error)) []T {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		v, err := Decode[T](r)
		if err != nil {
			if report != nil {
				report(r, err)
			}
			continue
		}
		out = append(out, v)
	}
	return out
}
