package collection

import "strings"

// First returns the first element of collection, or a Seq of the first n elements when n is given.
// A missing or malformed collection yields "".
func First(collection interface{}, n ...int) interface{} {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}
	if len(n) == 0 {
		if len(items) == 0 {
			return ""
		}
		return items[0]
	}
	return NewSeq(head(items, n[0])...)
}

// Last returns the last element of collection, or a Seq of the last n elements when n is given
func Last(collection interface{}, n ...int) interface{} {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}
	if len(n) == 0 {
		if len(items) == 0 {
			return ""
		}
		return items[len(items)-1]
	}
	return NewSeq(tail(items, n[0])...)
}

// Before returns every element except the last n
func Before(collection interface{}, n int) interface{} {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}
	return NewSeq(head(items, len(items)-n)...)
}

// After returns every element from index n onwards
func After(collection interface{}, n int) interface{} {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}
	return NewSeq(tail(items, len(items)-n)...)
}

// WithFirst renders the block with the first element, or once per element of the first n
func WithFirst(collection interface{}, opts Options, n ...int) string {
	items, ok := Coerce(collection)
	if !ok || len(items) == 0 {
		return ""
	}
	if len(n) == 0 {
		return opts.FnWith(items[0])
	}
	return renderEach(head(items, n[0]), opts)
}

// WithLast renders the block with the last element, or once per element of the last n
func WithLast(collection interface{}, opts Options, n ...int) string {
	items, ok := Coerce(collection)
	if !ok || len(items) == 0 {
		return ""
	}
	if len(n) == 0 {
		return opts.FnWith(items[len(items)-1])
	}
	return renderEach(tail(items, n[0]), opts)
}

// WithBefore renders the block once per element returned by Before
func WithBefore(collection interface{}, n int, opts Options) string {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}
	return renderEach(head(items, len(items)-n), opts)
}

// WithAfter renders the block once per element returned by After
func WithAfter(collection interface{}, n int, opts Options) string {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}
	return renderEach(tail(items, len(items)-n), opts)
}

// renderEach concatenates the block rendered with each item as scope
func renderEach(items []interface{}, opts Options) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(opts.FnWith(item))
	}
	return b.String()
}

// head copies the first n items, clamped to the slice bounds
func head(items []interface{}, n int) []interface{} {
	n = clamp(n, len(items))
	out := make([]interface{}, n)
	copy(out, items[:n])
	return out
}

// tail copies the last n items, clamped to the slice bounds
func tail(items []interface{}, n int) []interface{} {
	n = clamp(n, len(items))
	out := make([]interface{}, n)
	copy(out, items[len(items)-n:])
	return out
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
