package domain

import "encoding/json"

// Optional distinguishes an omitted JSON field from an explicit null.
// Set reports the field was present; Valid reports it was non-null.
type Optional[T any] struct {
	Set   bool
	Valid bool
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

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Some builds a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Valid: true, Value: v}
}

// Null builds a present, explicitly-null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
