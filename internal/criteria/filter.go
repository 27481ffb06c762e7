package criteria

// RangeFilter holds the equality-class and ordering operators for one field.
// A nil pointer (or nil slice) means the operator is unset. Operators that are
// set combine conjunctively: GreaterThan=5 together with LessThan=3 is a valid
// filter that simply matches nothing.
//
// In and NotIn distinguish nil from empty: a non-nil empty In set is a real
// constraint that matches no row.
type RangeFilter[T comparable] struct {
	Equals             *T
	NotEquals          *T
	In                 []T
	NotIn              []T
	Specified          *bool
	GreaterThan        *T
	GreaterThanOrEqual *T
	LessThan           *T
	LessThanOrEqual    *T
}

// IsZero reports whether no operator is set on the filter.
func (f *RangeFilter[T]) IsZero() bool {
	if f == nil {
		return true
	}
	return f.Equals == nil &&
		f.NotEquals == nil &&
		f.In == nil &&
		f.NotIn == nil &&
		f.Specified == nil &&
		f.GreaterThan == nil &&
		f.GreaterThanOrEqual == nil &&
		f.LessThan == nil &&
		f.LessThanOrEqual == nil
}

// StringFilter adds the case-sensitive substring operators on top of the
// equality-class operators.
type StringFilter struct {
	RangeFilter[string]
	Contains       *string
	DoesNotContain *string
}

func (f *StringFilter) IsZero() bool {
	if f == nil {
		return true
	}
	return f.RangeFilter.IsZero() && f.Contains == nil && f.DoesNotContain == nil
}
