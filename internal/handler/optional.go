package handler

import "encoding/json"

// Optional is a tri-state JSON field: absent, explicit null, or a value.
// Partial updates only touch fields that were present in the payload, and a
// present null clears a nullable column, so both bits matter.
type Optional[T any] struct {
	Set   bool // field appeared in the payload
	Valid bool // field carried a non-null value
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
