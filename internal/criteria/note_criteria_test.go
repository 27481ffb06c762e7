package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNoteCriteria(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		check  func(t *testing.T, c *NoteCriteria)
	}{
		{
			name:   "empty query",
			values: map[string]string{},
			check: func(t *testing.T, c *NoteCriteria) {
				assert.Nil(t, c.ID)
				assert.Nil(t, c.Content)
				assert.Nil(t, c.UserID)
			},
		},
		{
			name:   "id equals",
			values: map[string]string{"id.equals": "5"},
			check: func(t *testing.T, c *NoteCriteria) {
				require.NotNil(t, c.ID)
				require.NotNil(t, c.ID.Equals)
				assert.Equal(t, int64(5), *c.ID.Equals)
			},
		},
		{
			name:   "id range operators combine on one filter",
			values: map[string]string{"id.greaterThan": "5", "id.lessThan": "3"},
			check: func(t *testing.T, c *NoteCriteria) {
				require.NotNil(t, c.ID)
				require.NotNil(t, c.ID.GreaterThan)
				require.NotNil(t, c.ID.LessThan)
				assert.Equal(t, int64(5), *c.ID.GreaterThan)
				assert.Equal(t, int64(3), *c.ID.LessThan)
			},
		},
		{
			name:   "id in set",
			values: map[string]string{"id.in": "1,2,3"},
			check: func(t *testing.T, c *NoteCriteria) {
				require.NotNil(t, c.ID)
				assert.Equal(t, []int64{1, 2, 3}, c.ID.In)
			},
		},
		{
			name:   "empty in set is set but empty",
			values: map[string]string{"content.in": ""},
			check: func(t *testing.T, c *NoteCriteria) {
				require.NotNil(t, c.Content)
				require.NotNil(t, c.Content.In)
				assert.Empty(t, c.Content.In)
			},
		},
		{
			name:   "content contains",
			values: map[string]string{"content.contains": "milk"},
			check: func(t *testing.T, c *NoteCriteria) {
				require.NotNil(t, c.Content)
				require.NotNil(t, c.Content.Contains)
				assert.Equal(t, "milk", *c.Content.Contains)
			},
		},
		{
			name:   "content specified",
			values: map[string]string{"content.specified": "false"},
			check: func(t *testing.T, c *NoteCriteria) {
				require.NotNil(t, c.Content)
				require.NotNil(t, c.Content.Specified)
				assert.False(t, *c.Content.Specified)
			},
		},
		{
			name:   "userId equals",
			values: map[string]string{"userId.equals": "42"},
			check: func(t *testing.T, c *NoteCriteria) {
				require.NotNil(t, c.UserID)
				require.NotNil(t, c.UserID.Equals)
				assert.Equal(t, int64(42), *c.UserID.Equals)
			},
		},
		{
			name:   "paging keys ignored",
			values: map[string]string{"page": "2", "size": "10", "sort": "id,desc"},
			check: func(t *testing.T, c *NoteCriteria) {
				assert.Nil(t, c.ID)
				assert.Nil(t, c.Content)
				assert.Nil(t, c.UserID)
			},
		},
		{
			name:   "unknown fields ignored",
			values: map[string]string{"title.equals": "x"},
			check: func(t *testing.T, c *NoteCriteria) {
				assert.Nil(t, c.ID)
				assert.Nil(t, c.Content)
				assert.Nil(t, c.UserID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := DecodeNoteCriteria(tt.values)
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestDecodeNoteCriteriaErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{name: "bad number", values: map[string]string{"id.equals": "abc"}},
		{name: "bad number in set", values: map[string]string{"id.in": "1,abc"}},
		{name: "bad boolean", values: map[string]string{"id.specified": "maybe"}},
		{name: "unknown operator on known field", values: map[string]string{"id.like": "5"}},
		{name: "contains on numeric field", values: map[string]string{"id.contains": "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNoteCriteria(tt.values)
			assert.Error(t, err)
		})
	}
}

func TestRangeFilterIsZero(t *testing.T) {
	var f *RangeFilter[int64]
	assert.True(t, f.IsZero())
	assert.True(t, (&RangeFilter[int64]{}).IsZero())

	id := int64(1)
	assert.False(t, (&RangeFilter[int64]{Equals: &id}).IsZero())
	assert.False(t, (&RangeFilter[int64]{In: []int64{}}).IsZero(), "empty set is a real constraint")
}

func TestStringFilterIsZero(t *testing.T) {
	var f *StringFilter
	assert.True(t, f.IsZero())
	assert.True(t, (&StringFilter{}).IsZero())

	s := ""
	assert.False(t, (&StringFilter{Contains: &s}).IsZero())
}
