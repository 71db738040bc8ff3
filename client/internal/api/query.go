package api

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Filter is one query parameter. Value may be a scalar or a slice/array.
type Filter struct {
	Key   string
	Value any
}

// Filters keeps query parameters in the order they were added.
type Filters []Filter

// Encode renders the filters as a query string without the leading '?'.
// Scalars become key=value, slices become repeated key[]=value pairs, and
// nil values, empty strings and empty slices are dropped. Keys are written
// as-is so the brackets stay readable; values are escaped.
func (f Filters) Encode() string {
	var parts []string
	for _, flt := range f {
		if flt.Key == "" || isEmpty(flt.Value) {
			continue
		}
		rv := reflect.ValueOf(flt.Value)
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				parts = append(parts, flt.Key+"[]="+url.QueryEscape(formatValue(rv.Index(i).Interface())))
			}
			continue
		}
		parts = append(parts, flt.Key+"="+url.QueryEscape(formatValue(flt.Value)))
	}
	return strings.Join(parts, "&")
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	}
	return false
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return formatValue(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// ProductFilters are the listing filters the storefront offers. Zero values
// are omitted from the query.
type ProductFilters struct {
	Search     string
	CategoryID int64
	SellerID   int64
	Featured   bool
	Limit      int
	Categories []int64
	Conditions []string
	PriceRange string
}

// Filters converts f into an ordered filter list.
func (f ProductFilters) Filters() Filters {
	out := Filters{{Key: "search", Value: f.Search}}
	if f.CategoryID != 0 {
		out = append(out, Filter{Key: "category_id", Value: f.CategoryID})
	}
	if f.SellerID != 0 {
		out = append(out, Filter{Key: "seller_id", Value: f.SellerID})
	}
	if f.Featured {
		out = append(out, Filter{Key: "featured", Value: true})
	}
	if f.Limit > 0 {
		out = append(out, Filter{Key: "limit", Value: f.Limit})
	}
	return append(out,
		Filter{Key: "categories", Value: f.Categories},
		Filter{Key: "conditions", Value: f.Conditions},
		Filter{Key: "price_range", Value: f.PriceRange},
	)
}
