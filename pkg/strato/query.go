package strato

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ListOpts holds query parameters for list operations: free-form filters
// (name, label selector, status), a sort key, and pagination.
type ListOpts struct {
	Filters map[string]string
	Sort    string
	Page    int
	PerPage int
}

// NewListOpts creates empty list options.
func NewListOpts() *ListOpts {
	return &ListOpts{
		Filters: make(map[string]string),
	}
}

// WithFilter sets a filter parameter, passed through verbatim to the API.
func (o *ListOpts) WithFilter(key, value string) *ListOpts {
	if o.Filters == nil {
		o.Filters = make(map[string]string)
	}

	o.Filters[key] = value

	return o
}

// WithSort sets the sort key (e.g. "name:asc").
func (o *ListOpts) WithSort(sort string) *ListOpts {
	o.Sort = sort

	return o
}

// WithPage sets the page number.
func (o *ListOpts) WithPage(page int) *ListOpts {
	o.Page = page

	return o
}

// WithPerPage sets the page size.
func (o *ListOpts) WithPerPage(perPage int) *ListOpts {
	o.PerPage = perPage

	return o
}

// Values flattens the options into a single parameter mapping.
func (o *ListOpts) Values() map[string]string {
	values := make(map[string]string, len(o.Filters)+3)

	for key, value := range o.Filters {
		values[key] = value
	}

	if o.Sort != "" {
		values["sort"] = o.Sort
	}

	if o.Page > 0 {
		values["page"] = strconv.Itoa(o.Page)
	}

	if o.PerPage > 0 {
		values["per_page"] = strconv.Itoa(o.PerPage)
	}

	return values
}

// Encode renders the options as a canonical query string: keys in ascending
// lexicographic order, values percent-encoded, joined with "&". The canonical
// form keeps request URLs deterministic for logging and tests.
func (o *ListOpts) Encode() string {
	if o == nil {
		return ""
	}

	return EncodeQuery(o.Values())
}

// EncodeQuery canonically encodes a parameter mapping. An empty mapping
// yields the empty string.
func EncodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	for i, key := range keys {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(params[key]))
	}

	return builder.String()
}
