package basehdl

import (
	"testing"
)

type testDoc struct {
	Name string `bson:"Name"`
}

func newTestHandler() *BaseHandler[testDoc, testDoc, testDoc] {
	return NewBaseHandler[testDoc, testDoc, testDoc](nil)
}

func TestProcessFilterNilFilter(t *testing.T) {
	h := newTestHandler()
	filter, err := h.ProcessFilter(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filter) != 0 {
		t.Errorf("nil input should yield an empty filter, got %v", filter)
	}
}

func TestProcessFilterAllowsWhitelistedOperators(t *testing.T) {
	h := newTestHandler()
	_, err := h.ProcessFilter(map[string]interface{}{
		"Status": map[string]interface{}{"$in": []interface{}{"Open", "Closed"}},
	})
	if err != nil {
		t.Fatalf("whitelisted operator rejected: %v", err)
	}
}

func TestProcessFilterRejectsUnknownOperator(t *testing.T) {
	h := newTestHandler()
	_, err := h.ProcessFilter(map[string]interface{}{
		"Status": map[string]interface{}{"$where": "1 == 1"},
	})
	if err == nil {
		t.Fatal("$where must be rejected")
	}
}

func TestProcessFilterRejectsSensitiveFields(t *testing.T) {
	h := newTestHandler()
	for _, field := range []string{"Password", "accessToken", "apiKey"} {
		if _, err := h.ProcessFilter(map[string]interface{}{field: "x"}); err == nil {
			t.Errorf("field %q must be rejected", field)
		}
	}
}

func TestProcessFilterRejectsNestedViolation(t *testing.T) {
	h := newTestHandler()
	_, err := h.ProcessFilter(map[string]interface{}{
		"$or": []interface{}{
			map[string]interface{}{"Name": "a"},
			map[string]interface{}{"Password": "b"},
		},
	})
	if err == nil {
		t.Fatal("violation inside $or branch must be rejected")
	}
}

func TestProcessFilterRejectsTooManyFields(t *testing.T) {
	h := newTestHandler()
	raw := map[string]interface{}{}
	for i := 0; i < 11; i++ {
		raw[string(rune('a'+i))] = i
	}
	if _, err := h.ProcessFilter(raw); err == nil {
		t.Fatal("filter above the field cap must be rejected")
	}
}

func TestClampPagination(t *testing.T) {
	cases := []struct {
		page, limit         int64
		wantPage, wantLimit int64
	}{
		{0, 0, 1, 10},
		{1, 10, 1, 10},
		{-5, -1, 1, 10},
		{3, 500, 3, 100},
		{2, 25, 2, 25},
	}
	for _, c := range cases {
		page, limit := ClampPagination(c.page, c.limit)
		if page != c.wantPage || limit != c.wantLimit {
			t.Errorf("ClampPagination(%d, %d) = (%d, %d), want (%d, %d)",
				c.page, c.limit, page, limit, c.wantPage, c.wantLimit)
		}
	}
}
