package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/shared"
	"atlas/shared/constant"
	"atlas/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "1", input: "1", expected: boolPtr(true)},
		{name: "0", input: "0", expected: boolPtr(false)},
		{name: "uppercase TRUE", input: "TRUE", expected: boolPtr(true)},
		{name: "garbage returns nil", input: "not-a-bool", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)

				return
			}

			require.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Title    string  `db:"title"`
		Price    float64 `db:"price"`
		Featured *bool   `db:"featured"`
		Internal string
	}

	t.Run("skips zero values and untagged fields", func(t *testing.T) {
		result := shared.TransformFields(updateRequest{Title: "Desert Safari", Internal: "dropped"}, "admin-1")

		assert.Equal(t, "Desert Safari", result["title"])
		assert.NotContains(t, result, "price")
		assert.NotContains(t, result, "featured")
		assert.NotContains(t, result, "Internal")
	})

	t.Run("keeps pointer fields holding zero values", func(t *testing.T) {
		result := shared.TransformFields(updateRequest{Featured: boolPtr(false)}, "admin-1")

		require.Contains(t, result, "featured")
		assert.False(t, *result["featured"].(*bool))
	})

	t.Run("always stamps modification metadata", func(t *testing.T) {
		result := shared.TransformFields(updateRequest{}, "admin-1")

		assert.Equal(t, "admin-1", result[constant.FieldModifiedBy])
		_, ok := result[constant.FieldModifiedAt].(time.Time)
		assert.True(t, ok)
	})
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("tour-9", "id", "tours")

	require.Len(t, result.Filters, 1)

	filter, ok := result.Filters[0].(dto.Filter)
	require.True(t, ok)
	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, "tour-9", filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "tours", filter.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "tour:get", shared.BuildCacheKey("tour:get"))
	assert.Equal(t, "tour:get:abc", shared.BuildCacheKey("tour:get", "abc"))
	assert.Equal(t, "admin:stats:aggregate", shared.BuildCacheKey("admin:stats", "aggregate"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 20, SortBy: "title", SortDir: "asc"}

	t.Run("same query yields same key", func(t *testing.T) {
		first := shared.BuildCacheKeyWithQuery("tour:gets", params, shared.FilterByID("t-1", "id", "tours"))
		second := shared.BuildCacheKeyWithQuery("tour:gets", params, shared.FilterByID("t-1", "id", "tours"))

		assert.Equal(t, first, second)
	})

	t.Run("different filters yield different keys", func(t *testing.T) {
		first := shared.BuildCacheKeyWithQuery("tour:gets", params, shared.FilterByID("t-1", "id", "tours"))
		second := shared.BuildCacheKeyWithQuery("tour:gets", params, shared.FilterByID("t-2", "id", "tours"))

		assert.NotEqual(t, first, second)
	})

	t.Run("different pagination yields different keys", func(t *testing.T) {
		other := params
		other.Page = 3

		first := shared.BuildCacheKeyWithQuery("tour:gets", params, dto.FilterGroup{})
		second := shared.BuildCacheKeyWithQuery("tour:gets", other, dto.FilterGroup{})

		assert.NotEqual(t, first, second)
	})
}

func boolPtr(b bool) *bool {
	return &b
}
