// Package template provides a Handlebars template engine with the collection helpers installed.
//
// Helpers are bound to each parsed template through RegisterHelpers; raymond's global helper
// registry is never touched, so several engines can coexist in one process.
//
// Example usage:
//
//	engine := template.NewEngine(logger)
//	engine.RegisterMapper("double", func(item interface{}) interface{} {
//	    s := collection.Str(item)
//	    return s + s
//	})
//
//	data := map[string]interface{}{
//	    "array": []string{"a", "b", "c", "d", "e", "f", "g", "h"},
//	}
//
//	result, err := engine.Render("{{first array 2}} / {{after array 5}}", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Output: a,b / f,g,h
//
// Installed helpers:
//   - first, last, before, after - Slice a collection
//   - withFirst, withLast, withBefore, withAfter - Render the block per selected element
//   - any, empty, inArray, lengthEqual - Choose between the block and its inverse
//   - isArray, length - Inspect a value
//   - filter - Render the block per matching element
//   - forEach, eachIndex, eachIndexPlusOne - Iterate with positional metadata
//   - map, sort, sortBy, withSort, join - Transform a collection
//   - arrayify, stringify - Coerce and encode values
//
// Example with helpers:
//
//	{{#any items}}...{{else}}none{{/any}}             # Conditional on non-empty
//	{{#withFirst items count=2}}{{this}}{{/withFirst}} # Optional count from the hash
//	{{#withSort people property="age" reverse="true"}}{{name}}{{/withSort}}
//	{{map names "uppercase"}}                          # "A,B,C"
//	{{sortBy people "name"}}                           # Sorted by property
//	{{#filter people "x" property="name"}}{{age}}{{/filter}}
//
// raymond calls a helper only with its declared arity, so helpers that take a collection plus
// another argument (first, sort, map, withFirst, ...) fail the render when called with no
// arguments at all. Single-argument helpers (length, isArray, arrayify) render as if given
// nothing.
//
// The built-in each helper keeps raymond's implementation.
package template
