package gitlab

import (
	"net/url"
	"strconv"
	"strings"
)

// Query accumulates request parameters as an ordered multiset of key/value
// pairs. Keys may repeat, and pairs render in the order they were added —
// some endpoints apply defaults based on parameter order, so rendering never
// reorders or deduplicates.
type Query struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value string
}

// NewQuery creates an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Add appends the pair unconditionally.
func (q *Query) Add(key, value string) *Query {
	q.params = append(q.params, queryParam{key: key, value: value})

	return q
}

// AddInt appends the pair with the integer's decimal form.
func (q *Query) AddInt(key string, value int) *Query {
	return q.Add(key, strconv.Itoa(value))
}

// AddBool appends the pair as "true" or "false".
func (q *Query) AddBool(key string, value bool) *Query {
	return q.Add(key, strconv.FormatBool(value))
}

// AddOptional appends the pair only when value is non-nil. A nil pointer
// produces no entry at all, not an empty-string entry.
func (q *Query) AddOptional(key string, value *string) *Query {
	if value == nil {
		return q
	}

	return q.Add(key, *value)
}

// AddOptionalInt appends the pair only when value is non-nil.
func (q *Query) AddOptionalInt(key string, value *int) *Query {
	if value == nil {
		return q
	}

	return q.AddInt(key, *value)
}

// AddOptionalBool appends the pair only when value is non-nil. The tri-state
// is explicit: nil means omit, while false is a legitimate value and renders
// as "false".
func (q *Query) AddOptionalBool(key string, value *bool) *Query {
	if value == nil {
		return q
	}

	return q.AddBool(key, *value)
}

// Merge appends all pairs of other, preserving their order. Key collisions
// are allowed.
func (q *Query) Merge(other *Query) *Query {
	if other == nil {
		return q
	}

	q.params = append(q.params, other.params...)

	return q
}

// Len returns the number of accumulated pairs.
func (q *Query) Len() int {
	return len(q.params)
}

// Encode renders the query as "" when empty, otherwise as "?" followed by
// percent-encoded "k=v" pairs joined by "&". Values are escaped at render
// time; keys are static ASCII identifiers and are emitted as-is. Encode is
// pure: it never mutates the query and repeated calls yield identical
// strings.
func (q *Query) Encode() string {
	if len(q.params) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteByte('?')

	for i, param := range q.params {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(param.key)
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.value))
	}

	return builder.String()
}

// Values converts the query to url.Values for callers that need the standard
// library representation. Order within a key is preserved; order across keys
// is not, so Encode remains the canonical renderer.
func (q *Query) Values() url.Values {
	values := url.Values{}

	for _, param := range q.params {
		values.Add(param.key, param.value)
	}

	return values
}

// String implements fmt.Stringer using Encode.
func (q *Query) String() string {
	return q.Encode()
}
