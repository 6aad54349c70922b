// Package utility holds small helpers shared across layers: password
// hashing, token handling, type coercion and struct conversion.
package utility

import "encoding/json"

// ConvertStruct copies matching fields from src into dst by marshaling
// through JSON. Field names are matched via json tags.
func ConvertStruct(src interface{}, dst interface{}) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
