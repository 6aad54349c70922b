package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToBsonMap converts a struct into a bson.M honoring its bson tags.
// Used when a write needs to add fields (timestamps) to a typed model.
func ToBsonMap(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
