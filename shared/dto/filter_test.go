package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"atlas/shared/constant"
	"atlas/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name           string
		filter         dto.Filter
		expectedClause string
		expectedArgs   map[string]any
	}{
		{
			name:           "eq with table prefix",
			filter:         dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed", Table: "bookings"},
			expectedClause: "bookings.status = :status",
			expectedArgs:   map[string]any{"status": "confirmed"},
		},
		{
			name:           "eq without table prefix",
			filter:         dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "t-1"},
			expectedClause: "id = :id",
			expectedArgs:   map[string]any{"id": "t-1"},
		},
		{
			name:           "like wraps the value in wildcards",
			filter:         dto.Filter{Field: "title", Operator: dto.FilterOperatorLike, Value: "safari", Table: "tours"},
			expectedClause: "LOWER(tours.title) LIKE LOWER(:title)",
			expectedArgs:   map[string]any{"title": "%safari%"},
		},
		{
			name:           "not eq",
			filter:         dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "cancelled"},
			expectedClause: "status != :status",
			expectedArgs:   map[string]any{"status": "cancelled"},
		},
		{
			name:           "in over a slice expands named args",
			filter:         dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"confirmed", "completed"}},
			expectedClause: "status IN (:status_0, :status_1)",
			expectedArgs:   map[string]any{"status_0": "confirmed", "status_1": "completed"},
		},
		{
			name:           "is null has no args",
			filter:         dto.Filter{Field: "event_id", Operator: dto.FilterIsNull, Table: "bookings"},
			expectedClause: "bookings.event_id IS NULL",
			expectedArgs:   map[string]any{},
		},
		{
			name:           "custom arg name",
			filter:         dto.Filter{ArgName: "min_price", Field: "price", Operator: dto.FilterOperatorGreaterEq, Value: 100.0},
			expectedClause: "price >= :min_price",
			expectedArgs:   map[string]any{"min_price": 100.0},
		},
		{
			name:           "unknown operator yields nothing",
			filter:         dto.Filter{Field: "price", Operator: "between", Value: 1},
			expectedClause: "",
			expectedArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedClause, clause)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		clause, args := group.GetWhereClause()

		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("joins filters with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed"},
				dto.Filter{Field: "payment_status", Operator: dto.FilterOperatorEq, Value: "paid"},
			},
		}

		clause, args := group.GetWhereClause()

		assert.Equal(t, "(status = :status AND payment_status = :payment_status)", clause)
		assert.Equal(t, map[string]any{"status": "confirmed", "payment_status": "paid"}, args)
	})

	t.Run("defaults to AND when the operator is unset", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "a", Operator: dto.FilterOperatorEq, Value: 1},
				dto.Filter{Field: "b", Operator: dto.FilterOperatorEq, Value: 2},
			},
		}

		clause, _ := group.GetWhereClause()

		assert.Equal(t, "(a = :a AND b = :b)", clause)
	})

	t.Run("supports nested groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "featured", Operator: dto.FilterOperatorEq, Value: true},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "tour_id", Operator: dto.FilterIsNotNull},
						dto.Filter{Field: "event_id", Operator: dto.FilterIsNotNull},
					},
				},
			},
		}

		clause, args := group.GetWhereClause()

		assert.Equal(t, "(featured = :featured AND (tour_id IS NOT NULL OR event_id IS NOT NULL))", clause)
		assert.Equal(t, map[string]any{"featured": true}, args)
	})
}

func TestQueryParams_FromRequest(t *testing.T) {
	t.Run("reads valid values from the query string", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/tours?page=3&limit=25&sort_by=title&sort_dir=desc", nil)

		params := dto.QueryParams{}
		params.FromRequest(r, false)

		assert.Equal(t, 3, params.Page)
		assert.Equal(t, 25, params.Limit)
		assert.Equal(t, "title", params.SortBy)
		assert.Equal(t, dto.SortDirDesc, params.SortDir)
	})

	t.Run("applies defaults when requested", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/tours", nil)

		params := dto.QueryParams{}
		params.FromRequest(r, true)

		assert.Equal(t, constant.DefaultValuePage, params.Page)
		assert.Equal(t, constant.DefaultValueLimit, params.Limit)
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/tours?page=-1&limit=abc&sort_dir=sideways", nil)

		params := dto.QueryParams{}
		params.FromRequest(r, false)

		assert.Zero(t, params.Page)
		assert.Zero(t, params.Limit)
		assert.Empty(t, params.SortDir)
	})
}
