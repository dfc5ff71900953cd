package collection

import (
	"slices"
)

// Map applies fn to every element and joins the results with ",".
// A missing fn or a collection that cannot be coerced yields "".
func Map(collection interface{}, fn Mapper) string {
	items, ok := Coerce(collection)
	if !ok || fn == nil {
		return ""
	}

	results := make([]interface{}, len(items))
	for i, item := range items {
		results[i] = fn(item)
	}
	return joinItems(results, ",")
}

// Sort returns the elements in lexicographic order of their string form, reversed when asked.
// A collection that cannot be coerced yields "".
func Sort(collection interface{}, reverse bool) interface{} {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}
	return NewSeq(sorted(items, compareText, reverse)...)
}

// SortBy returns the elements ordered by key.
//
// key may be a Comparator used as the full two-argument ordering, a property path whose
// extracted values are compared in natural order, or nil to compare the elements themselves.
func SortBy(collection interface{}, key interface{}) interface{} {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}

	var cmp Comparator = compareNatural
	switch k := key.(type) {
	case Comparator:
		if k != nil {
			cmp = k
		}
	case func(a, b interface{}) int:
		if k != nil {
			cmp = k
		}
	case string:
		if k != "" {
			cmp = byProperty(k)
		}
	}

	return NewSeq(sorted(items, cmp, false)...)
}

// WithSort renders the block once per element in sorted order.
// Elements are ordered lexicographically, or by the natural order of element[property] when
// property is set; reverse flips the final order.
func WithSort(collection interface{}, property string, reverse bool, opts Options) string {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}

	var cmp Comparator = compareText
	if property != "" {
		cmp = byProperty(property)
	}
	return renderEach(sorted(items, cmp, reverse), opts)
}

// Join joins the string form of every element with sep, ", " by default
func Join(collection interface{}, sep ...string) string {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}

	separator := ", "
	if len(sep) > 0 {
		separator = sep[0]
	}
	return joinItems(items, separator)
}

// byProperty compares elements by the natural order of the value at path
func byProperty(path string) Comparator {
	return func(a, b interface{}) int {
		return compareNatural(Get(a, path), Get(b, path))
	}
}

// sorted returns a stably sorted copy of items
func sorted(items []interface{}, cmp Comparator, reverse bool) []interface{} {
	out := slices.Clone(items)
	if out == nil {
		out = []interface{}{}
	}
	slices.SortStableFunc(out, func(a, b interface{}) int {
		return cmp(a, b)
	})
	if reverse {
		slices.Reverse(out)
	}
	return out
}
