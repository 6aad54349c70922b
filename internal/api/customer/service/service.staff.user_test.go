package customersvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	customerdto "gotask_backend/internal/api/customer/dto"
)

func TestBuildListFilterEscapesRegexMetacharacters(t *testing.T) {
	filter := BuildListFilter(&customerdto.ListUsersQuery{Search: "a.b*c"})

	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 5 {
		t.Fatalf("expected a 5-branch $or, got %v", filter["$or"])
	}
	first, ok := or[0].(bson.M)
	if !ok {
		t.Fatalf("unexpected branch type %T", or[0])
	}
	regex, ok := first["FirstName"].(bson.M)
	if !ok {
		t.Fatalf("first branch should match FirstName, got %v", first)
	}
	if regex["$regex"] != `a\.b\*c` {
		t.Errorf("metacharacters must be escaped, got %q", regex["$regex"])
	}
	if regex["$options"] != "i" {
		t.Errorf("search should be case-insensitive, got %q", regex["$options"])
	}
}

func TestBuildListFilterFieldEqualityAndDates(t *testing.T) {
	active := true
	filter := BuildListFilter(&customerdto.ListUsersQuery{
		IsActive: &active,
		Gender:   "Female",
		City:     "Kochi",
		From:     "2025-01-01",
		To:       "2025-02-01",
	})

	if filter["isActive"] != true {
		t.Errorf("isActive = %v", filter["isActive"])
	}
	if filter["Gender"] != "Female" {
		t.Errorf("Gender = %v", filter["Gender"])
	}
	createdAt, ok := filter["createdAt"].(bson.M)
	if !ok {
		t.Fatal("createdAt range missing")
	}
	if _, ok := createdAt["$gte"]; !ok {
		t.Error("createdAt missing $gte bound")
	}
	if _, ok := createdAt["$lte"]; !ok {
		t.Error("createdAt missing $lte bound")
	}
}

func TestBuildListFilterEmptyQuery(t *testing.T) {
	filter := BuildListFilter(&customerdto.ListUsersQuery{})
	if len(filter) != 0 {
		t.Errorf("empty query should produce an empty filter, got %v", filter)
	}
}

func TestBuildListProjectionDefaultExcludesPassword(t *testing.T) {
	projection := BuildListProjection("")
	if v, ok := projection["Password"]; !ok || v != 0 {
		t.Errorf("default projection must exclude Password, got %v", projection)
	}
}

func TestBuildListProjectionNeverIncludesPassword(t *testing.T) {
	projection := BuildListProjection("FirstName, Email, Password")
	if _, ok := projection["Password"]; ok {
		t.Errorf("a requested Password field must be dropped, got %v", projection)
	}
	if projection["FirstName"] != 1 || projection["Email"] != 1 {
		t.Errorf("requested fields missing from projection: %v", projection)
	}
}

func TestBuildListProjectionPasswordOnlyFallsBack(t *testing.T) {
	projection := BuildListProjection("Password")
	if v, ok := projection["Password"]; !ok || v != 0 {
		t.Errorf("Password-only list should fall back to the exclusion, got %v", projection)
	}
}

func TestListTotalPagesFloorsAtOne(t *testing.T) {
	cases := []struct {
		total, limit, want int64
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{5, 0, 1},
	}
	for _, c := range cases {
		if got := ListTotalPages(c.total, c.limit); got != c.want {
			t.Errorf("ListTotalPages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}
