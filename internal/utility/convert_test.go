package utility

import (
	"testing"
	"time"
)

func TestToBool(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{" true ", true},
		{"false", false},
		{"1", false},
		{"", false},
		{true, true},
		{42, false},
	}
	for _, c := range cases {
		if got := ToBool(c.in); got != c.want {
			t.Errorf("ToBool(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToInt(t *testing.T) {
	if got := ToInt("25", 1); got != 25 {
		t.Errorf("ToInt(25) = %d", got)
	}
	if got := ToInt("", 10); got != 10 {
		t.Errorf("empty input should fall back, got %d", got)
	}
	if got := ToInt("-3", 10); got != 10 {
		t.Errorf("non-positive input should fall back, got %d", got)
	}
	if got := ToInt("abc", 7); got != 7 {
		t.Errorf("malformed input should fall back, got %d", got)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2025-03-15")
	if !ok {
		t.Fatal("calendar date should parse")
	}
	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, ok := ParseDate("2025-03-15T10:30:00Z"); !ok {
		t.Error("RFC3339 timestamp should parse")
	}
	if _, ok := ParseDate("not-a-date"); ok {
		t.Error("garbage should not parse")
	}
	if _, ok := ParseDate(""); ok {
		t.Error("empty string should not parse")
	}
}
