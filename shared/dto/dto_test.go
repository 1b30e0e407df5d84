package dto_test

import (
	"net/http/httptest"
	"testing"

	"hotel/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name: "eq operator with table",
			filter: dto.Filter{
				Field:    "room_type",
				Value:    "Standard Twin",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			where: "rooms.room_type = :room_type",
			args:  map[string]any{"room_type": "Standard Twin"},
		},
		{
			name: "eq operator without table",
			filter: dto.Filter{
				Field:    "id",
				Value:    "abc",
				Operator: dto.FilterOperatorEq,
			},
			where: "id = :id",
			args:  map[string]any{"id": "abc"},
		},
		{
			name: "is null operator",
			filter: dto.Filter{
				Field:    "room_id",
				Operator: dto.FilterIsNull,
				Table:    "bookings",
			},
			where: "bookings.room_id IS NULL",
			args:  map[string]any{},
		},
		{
			name: "unknown operator",
			filter: dto.Filter{
				Field:    "id",
				Operator: "bogus",
			},
			where: "",
			args:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.where {
				t.Errorf("expected where %q, got %q", tt.where, where)
			}

			if len(args) != len(tt.args) {
				t.Errorf("expected %d args, got %d", len(tt.args), len(args))
			}

			for key, val := range tt.args {
				if args[key] != val {
					t.Errorf("expected arg %s=%v, got %v", key, val, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "is_available",
				Value:    true,
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			dto.Filter{
				Field:    "room_type",
				Value:    "Superior Double",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(rooms.is_available = :is_available AND rooms.room_type = :room_type)"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()
	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all params set",
			url:            "/v1/rooms?page=2&limit=5&sort_by=created_at&sort_dir=desc",
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   5,
				SortBy:  "created_at",
				SortDir: "DESC",
			},
		},
		{
			name:           "defaults applied",
			url:            "/v1/rooms",
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  1,
				Limit: 10,
			},
		},
		{
			name:           "invalid values ignored",
			url:            "/v1/rooms?page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  1,
				Limit: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			q := dto.QueryParams{}
			q.FromRequest(r, tt.defaultRequest)

			if q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, q)
			}
		})
	}
}
