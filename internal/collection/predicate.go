package collection

import "strings"

// Any renders the block when the collection has at least one element, else the inverse
func Any(collection interface{}, opts Options) string {
	items, _ := Coerce(collection)
	if len(items) > 0 {
		return opts.Fn()
	}
	return opts.Inverse()
}

// Empty renders the block when the collection has no elements, else the inverse.
// Missing and malformed collections count as empty.
func Empty(collection interface{}, opts Options) string {
	items, _ := Coerce(collection)
	if len(items) == 0 {
		return opts.Fn()
	}
	return opts.Inverse()
}

// InArray renders the block when value is strictly equal to an element, else the inverse
func InArray(collection interface{}, value interface{}, opts Options) string {
	items, _ := Coerce(collection)
	for _, item := range items {
		if equal(item, value) {
			return opts.Fn()
		}
	}
	return opts.Inverse()
}

// IsArray returns "true" when value is a sequence and "false" otherwise
func IsArray(value interface{}) string {
	if IsSequence(value) {
		return "true"
	}
	return "false"
}

// Filter renders the block once per element equal to value, with that element as scope.
// When property is set, element[property] is compared instead of the element itself.
// The inverse is rendered when nothing matches.
func Filter(collection interface{}, value interface{}, property string, opts Options) string {
	items, _ := Coerce(collection)

	var b strings.Builder
	matched := false
	for _, item := range items {
		candidate := item
		if property != "" {
			candidate = Get(item, property)
		}
		if !equal(candidate, value) {
			continue
		}
		matched = true
		b.WriteString(opts.FnWith(item))
	}

	if !matched {
		return opts.Inverse()
	}
	return b.String()
}
