package reportsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCountGroupStage(t *testing.T) {
	stage := countGroup("Total Users")
	if stage[0].Key != "$group" {
		t.Fatalf("expected a $group stage, got %q", stage[0].Key)
	}
	group, ok := stage[0].Value.(bson.M)
	if !ok {
		t.Fatalf("unexpected stage value type %T", stage[0].Value)
	}
	if group["_id"] != "Total Users" {
		t.Errorf("group _id = %v, want the card label", group["_id"])
	}
	sum, ok := group["count"].(bson.M)
	if !ok || sum["$sum"] != 1 {
		t.Errorf("count accumulator wrong: %v", group["count"])
	}
}
