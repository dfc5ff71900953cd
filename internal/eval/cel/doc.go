// Package cel compiles CEL (Common Expression Language) expressions into the caller-supplied
// functions consumed by the map and sortBy helpers.
//
// Templates cannot carry Go functions, so a host that is configured rather than compiled
// (such as the hbs-render command) defines them as expressions instead. Mappers see the
// current element as item; comparators see the two operands as a and b.
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	double, err := evaluator.Mapper("item + item")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	double("a") // "aa"
//
//	byLength, err := evaluator.Comparator("size(a) - size(b)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	byLength("bb", "a") // 1
//
// Comparators may return an int (negative, zero, positive) or a bool meaning "a sorts first".
//
// Supported operations:
//   - Comparisons: ==, !=, <, <=, >, >=
//   - Boolean logic: &&, ||, !
//   - String operations: contains, startsWith, endsWith, matches, size
//   - Arithmetic: +, -, *, /, %
//   - Map access: item.field, item["field"]
package cel
