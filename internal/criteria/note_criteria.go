package criteria

import (
	"fmt"
	"strconv"
	"strings"
)

// NoteCriteria is the full set of field filters for one list/count request.
// A nil field contributes no predicate.
type NoteCriteria struct {
	ID      *RangeFilter[int64]
	Content *StringFilter
	UserID  *RangeFilter[int64]
}

// Operator names as they appear on the query surface, e.g.
// /api/notes?id.greaterThan=5&content.contains=milk&userId.in=1,2
const (
	OpEquals             = "equals"
	OpNotEquals          = "notEquals"
	OpIn                 = "in"
	OpNotIn              = "notIn"
	OpSpecified          = "specified"
	OpGreaterThan        = "greaterThan"
	OpGreaterThanOrEqual = "greaterThanOrEqual"
	OpLessThan           = "lessThan"
	OpLessThanOrEqual    = "lessThanOrEqual"
	OpContains           = "contains"
	OpDoesNotContain     = "doesNotContain"
)

// DecodeNoteCriteria reads the field.operator keys out of a request's query
// parameters. Keys that do not start with a known field name ("id", "content",
// "userId") are ignored so that paging parameters can share the query string.
// A known field with an unknown operator, or a value that does not parse for
// the field's type, is a decoding error.
func DecodeNoteCriteria(values map[string]string) (*NoteCriteria, error) {
	c := &NoteCriteria{}
	for key, value := range values {
		field, op, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}
		var err error
		switch field {
		case "id":
			if c.ID == nil {
				c.ID = &RangeFilter[int64]{}
			}
			err = decodeInt64Op(c.ID, op, value)
		case "content":
			if c.Content == nil {
				c.Content = &StringFilter{}
			}
			err = decodeStringOp(c.Content, op, value)
		case "userId":
			if c.UserID == nil {
				c.UserID = &RangeFilter[int64]{}
			}
			err = decodeInt64Op(c.UserID, op, value)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", field, op, err)
		}
	}
	return c, nil
}

func decodeInt64Op(f *RangeFilter[int64], op, value string) error {
	switch op {
	case OpIn, OpNotIn:
		set, err := splitInt64s(value)
		if err != nil {
			return err
		}
		if op == OpIn {
			f.In = set
		} else {
			f.NotIn = set
		}
		return nil
	case OpSpecified:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		f.Specified = &b
		return nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", value)
	}
	switch op {
	case OpEquals:
		f.Equals = &n
	case OpNotEquals:
		f.NotEquals = &n
	case OpGreaterThan:
		f.GreaterThan = &n
	case OpGreaterThanOrEqual:
		f.GreaterThanOrEqual = &n
	case OpLessThan:
		f.LessThan = &n
	case OpLessThanOrEqual:
		f.LessThanOrEqual = &n
	default:
		return fmt.Errorf("unsupported operator")
	}
	return nil
}

func decodeStringOp(f *StringFilter, op, value string) error {
	switch op {
	case OpEquals:
		f.Equals = &value
	case OpNotEquals:
		f.NotEquals = &value
	case OpIn:
		f.In = splitStrings(value)
	case OpNotIn:
		f.NotIn = splitStrings(value)
	case OpSpecified:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		f.Specified = &b
	case OpContains:
		f.Contains = &value
	case OpDoesNotContain:
		f.DoesNotContain = &value
	case OpGreaterThan, OpGreaterThanOrEqual, OpLessThan, OpLessThanOrEqual:
		// Lexicographic ranges on content are accepted for completeness.
		switch op {
		case OpGreaterThan:
			f.GreaterThan = &value
		case OpGreaterThanOrEqual:
			f.GreaterThanOrEqual = &value
		case OpLessThan:
			f.LessThan = &value
		case OpLessThanOrEqual:
			f.LessThanOrEqual = &value
		}
	default:
		return fmt.Errorf("unsupported operator")
	}
	return nil
}

// splitStrings turns "a,b" into {"a","b"} and "" into an empty (matches
// nothing) set.
func splitStrings(value string) []string {
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}

func splitInt64s(value string) ([]int64, error) {
	if value == "" {
		return []int64{}, nil
	}
	parts := strings.Split(value, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}
