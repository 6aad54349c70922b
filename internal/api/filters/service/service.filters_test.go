package filterssvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"gotask_backend/internal/common"
)

func TestCounterValue(t *testing.T) {
	cases := []struct {
		name string
		rows []bson.M
		want int64
	}{
		{"empty dataset", nil, 0},
		{"int32 counter", []bson.M{{"totalAreas": int32(7)}}, 7},
		{"int64 counter", []bson.M{{"totalAreas": int64(9)}}, 9},
		{"float counter", []bson.M{{"totalAreas": float64(3)}}, 3},
		{"missing key", []bson.M{{"other": int32(4)}}, 0},
	}
	for _, c := range cases {
		if got := counterValue(c.rows, "totalAreas"); got != c.want {
			t.Errorf("%s: counterValue = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestGroupedPipelinesShape(t *testing.T) {
	condition := bson.M{"AssignedFranchiseId": "f1"}
	countPipeline, dataPipeline := groupedPipelines(condition, "$AssignedFranchiseArea", "totalAreas", 3, 10)

	if len(countPipeline) != 3 {
		t.Fatalf("count pipeline has %d stages, want 3", len(countPipeline))
	}
	if countPipeline[2][0].Key != "$count" || countPipeline[2][0].Value != "totalAreas" {
		t.Errorf("count pipeline must end in $count totalAreas, got %v", countPipeline[2])
	}

	if len(dataPipeline) != 5 {
		t.Fatalf("data pipeline has %d stages, want 5", len(dataPipeline))
	}
	if dataPipeline[3][0].Key != "$skip" || dataPipeline[3][0].Value != int64(20) {
		t.Errorf("page 3 with limit 10 should skip 20, got %v", dataPipeline[3])
	}
	if dataPipeline[4][0].Key != "$limit" || dataPipeline[4][0].Value != int64(10) {
		t.Errorf("limit stage wrong: %v", dataPipeline[4])
	}
}

func TestLookupPipelinesShape(t *testing.T) {
	countPipeline, dataPipeline := lookupPipelines(bson.M{"_id": "x"}, "totalDepartments", 1, 10)
	if len(countPipeline) != 2 {
		t.Errorf("lookup count pipeline has %d stages, want 2", len(countPipeline))
	}
	if len(dataPipeline) != 3 {
		t.Errorf("lookup data pipeline has %d stages, want 3", len(dataPipeline))
	}
	if dataPipeline[1][0].Key != "$skip" || dataPipeline[1][0].Value != int64(0) {
		t.Errorf("first page should skip 0, got %v", dataPipeline[1])
	}
}

func TestParseDatePair(t *testing.T) {
	dateRange, err := parseDatePair("2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := dateRange["$gte"]; !ok {
		t.Error("range missing $gte")
	}
	if _, ok := dateRange["$lte"]; !ok {
		t.Error("range missing $lte")
	}

	_, err = parseDatePair("bad", "2025-01-31")
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected app error, got %v", err)
	}
	if appErr.StatusCode != common.StatusBadRequest || appErr.Message != "Invalid date format" {
		t.Errorf("got %d %q", appErr.StatusCode, appErr.Message)
	}
}
