package shared_test

import (
	"testing"

	"hotel/shared"
	"hotel/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	if got := shared.ConvertStringToBool(""); got != nil {
		t.Error("expected nil for empty string")
	}

	if got := shared.ConvertStringToBool("not-a-bool"); got != nil {
		t.Error("expected nil for invalid string")
	}

	if got := shared.ConvertStringToBool("true"); got == nil || !*got {
		t.Error("expected true")
	}

	if got := shared.ConvertStringToBool("false"); got == nil || *got {
		t.Error("expected false")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "rooms")

	where, args := group.GetWhereClause()
	if where != "(rooms.id = :id)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["id"] != "abc" {
		t.Errorf("expected id arg 'abc', got %v", args["id"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("room:get"); got != "room:get" {
		t.Errorf("expected bare prefix, got %q", got)
	}

	if got := shared.BuildCacheKey("room:get", "abc"); got != "room:get:abc" {
		t.Errorf("expected 'room:get:abc', got %q", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_type", Value: "Standard Twin", Operator: dto.FilterOperatorEq, Table: "rooms"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("room:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if first != second {
		t.Error("expected stable cache keys for identical inputs")
	}

	other := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected different cache keys for different pagination")
	}
}
