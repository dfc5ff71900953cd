// Package collection implements Handlebars-style helpers over arrays and array-like values.
//
// Every helper accepts already-resolved arguments. A collection may be any Go slice or array,
// a Seq returned by another helper, or a JSON-encoded array string. Block helpers receive an
// Options value supplied by the host renderer and decide which body (if any) to render.
//
// Helpers never fail on bad input: a missing or malformed collection degrades to an empty
// string, "0", or the inverse block. Functions supplied by the caller (a Mapper or a
// Comparator) are invoked as-is and anything they panic with reaches the host unchanged.
//
// Example usage:
//
//	items := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
//
//	collection.First(items)          // "a"
//	collection.First(items, 2)       // Seq{"a", "b"} -> "a,b"
//	collection.After(items, 5)       // Seq{"f", "g", "h"}
//	collection.Before(items, 5)      // Seq{"a", "b", "c"}
//	collection.Length(`["b","c"]`)   // "2"
//
// Block helpers:
//
//	out := collection.WithFirst(items, opts, 2) // renders the block for "a" then "b"
//	out = collection.Any(items, opts)          // block when items is non-empty
//
// The package holds no state between calls and is safe for concurrent use.
package collection
