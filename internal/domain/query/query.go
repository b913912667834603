// Package query turns raw request parameters into a store-agnostic
// specification of filters, ordering, projection and pagination.
package query

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Operator is a comparison applied by a filter predicate.
type Operator string

const (
	OpEq  Operator = "eq"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100

	// DefaultSort orders newest documents first.
	DefaultSort = "-createdAt"
	// VersionField is the internal revision counter hidden from default projections.
	VersionField = "__v"

	keyPage   = "page"
	keySort   = "sort"
	keyLimit  = "limit"
	keyFields = "fields"
)

var reservedKeys = map[string]struct{}{
	keyPage:   {},
	keySort:   {},
	keyLimit:  {},
	keyFields: {},
}

var comparisonTokens = map[string]Operator{
	"gt":  OpGt,
	"gte": OpGte,
	"lt":  OpLt,
	"lte": OpLte,
}

// Predicate is a single field comparison.
type Predicate struct {
	Field string
	Op    Operator
	Value string
}

// SortKey orders results by one field.
type SortKey struct {
	Field string
	Desc  bool
}

// Selection lists projected fields. Include wins over Exclude when both are set.
type Selection struct {
	Include []string
	Exclude []string
}

// Page is a resolved pagination window.
type Page struct {
	Page  int
	Limit int
	Skip  int
}

// Spec is the finalized query specification handed to a store adapter.
type Spec struct {
	Filters   []Predicate
	Sort      []SortKey
	Selection Selection
	Page      Page
}

// Features accumulates a Spec from request parameters.
type Features struct {
	params url.Values
	spec   Spec
}

// NewFeatures starts a pipeline over a copy of params.
func NewFeatures(params url.Values) *Features {
	cloned := make(url.Values, len(params))
	for k, v := range params {
		cloned[k] = append([]string(nil), v...)
	}

	return &Features{params: cloned}
}

// With prepends predicates that scope the result, such as a parent resource id.
func (f *Features) With(predicates ...Predicate) *Features {
	f.spec.Filters = append(append([]Predicate(nil), predicates...), f.spec.Filters...)

	return f
}

// Filter builds predicates from every non reserved parameter.
func (f *Features) Filter() *Features {
	keys := make([]string, 0, len(f.params))
	for key := range f.params {
		if _, reserved := reservedKeys[key]; reserved {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		values := f.params[key]
		if len(values) == 0 {
			continue
		}
		field, op := parseKey(key)
		f.spec.Filters = append(f.spec.Filters, Predicate{
			Field: field,
			Op:    op,
			Value: values[len(values)-1],
		})
	}

	return f
}

// Sort reads "sort=a,-b". Without it results are ordered newest first.
func (f *Features) Sort() *Features {
	raw := f.params.Get(keySort)
	if strings.TrimSpace(raw) == "" {
		raw = DefaultSort
	}

	f.spec.Sort = nil
	for _, item := range splitList(raw) {
		key := SortKey{Field: item}
		if strings.HasPrefix(item, "-") {
			key = SortKey{Field: strings.TrimPrefix(item, "-"), Desc: true}
		}
		if key.Field == "" {
			continue
		}
		f.spec.Sort = append(f.spec.Sort, key)
	}

	return f
}

// LimitFields reads "fields=a,b,-c". Without it the version field is excluded.
func (f *Features) LimitFields() *Features {
	raw := f.params.Get(keyFields)
	if strings.TrimSpace(raw) == "" {
		f.spec.Selection = Selection{Exclude: []string{VersionField}}

		return f
	}

	var selection Selection
	for _, item := range splitList(raw) {
		if strings.HasPrefix(item, "-") {
			if field := strings.TrimPrefix(item, "-"); field != "" {
				selection.Exclude = append(selection.Exclude, field)
			}

			continue
		}
		selection.Include = append(selection.Include, item)
	}
	f.spec.Selection = selection

	return f
}

// Paginate reads "page" and "limit" and derives the skip offset.
// A skip that would overflow saturates, so such a page is simply past the end.
func (f *Features) Paginate() *Features {
	page := positiveInt(f.params.Get(keyPage), DefaultPage)
	limit := positiveInt(f.params.Get(keyLimit), DefaultLimit)

	skip := math.MaxInt
	if page-1 <= math.MaxInt/limit {
		skip = (page - 1) * limit
	}

	f.spec.Page = Page{
		Page:  page,
		Limit: limit,
		Skip:  skip,
	}

	return f
}

// Spec finalizes the pipeline. Stages that never ran keep their defaults.
func (f *Features) Spec() *Spec {
	spec := f.spec
	if spec.Page.Limit == 0 {
		spec.Page = Page{Page: DefaultPage, Limit: DefaultLimit}
	}
	spec.Filters = append([]Predicate(nil), f.spec.Filters...)

	return &spec
}

// Build runs every stage in the canonical order.
func Build(params url.Values) *Spec {
	return NewFeatures(params).Filter().Sort().LimitFields().Paginate().Spec()
}

func parseKey(key string) (string, Operator) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, OpEq
	}

	field := key[:open]
	token := key[open+1 : len(key)-1]
	if op, ok := comparisonTokens[token]; ok {
		return field, op
	}

	return field, Operator(token)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}

	return items
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
