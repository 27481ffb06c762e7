package dto

import "encoding/json"

// OptionalString is a JSON field that records whether it was present in the
// payload at all. Three states: absent (Set false), explicit null (Set true,
// Valid false), value (Set true, Valid true). The distinction drives the
// partial-update merge: absent fields must leave the stored value untouched.
type OptionalString struct {
	Set   bool
	Valid bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		o.Value = ""
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
