package collection

import (
	"reflect"
	"strings"
)

// ForEach renders the block once per element with the element as scope. Map and struct
// elements are copied into a fresh scope extended with index (1-based), total, isFirst and
// isLast; struct fields are reachable by name and by json tag. Other elements are bound as-is.
// The private variables @index (0-based), @first, @last, @total, @isFirst and @isLast are set
// for every element.
func ForEach(collection interface{}, opts Options) string {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}

	total := len(items)
	var b strings.Builder
	for i, item := range items {
		isFirst, isLast := i == 0, i == total-1

		var ctx interface{} = item
		if scope, ok := scopeOf(item); ok {
			scope["index"] = i + 1
			scope["total"] = total
			scope["isFirst"] = isFirst
			scope["isLast"] = isLast
			ctx = scope
		}

		b.WriteString(opts.FnData(ctx, map[string]interface{}{
			"index":   i,
			"first":   isFirst,
			"last":    isLast,
			"total":   total,
			"isFirst": isFirst,
			"isLast":  isLast,
		}))
	}
	return b.String()
}

// EachIndex renders the block once per element with item and a 0-based index in scope
func EachIndex(collection interface{}, opts Options) string {
	return eachIndex(collection, 0, opts)
}

// EachIndexPlusOne renders the block once per element with item and a 1-based index in scope
func EachIndexPlusOne(collection interface{}, opts Options) string {
	return eachIndex(collection, 1, opts)
}

func eachIndex(collection interface{}, offset int, opts Options) string {
	items, ok := Coerce(collection)
	if !ok {
		return ""
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(opts.FnData(
			map[string]interface{}{"item": item, "index": i + offset},
			map[string]interface{}{"index": i},
		))
	}
	return b.String()
}

// scopeOf copies a map or struct element into a fresh map scope. It reports false for
// elements that have no fields.
func scopeOf(item interface{}) (map[string]interface{}, bool) {
	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		scope := make(map[string]interface{}, rv.Len()+4)
		iter := rv.MapRange()
		for iter.Next() {
			scope[iter.Key().String()] = iter.Value().Interface()
		}
		return scope, true

	case reflect.Struct:
		t := rv.Type()
		scope := make(map[string]interface{}, t.NumField()+4)
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			value := rv.Field(i).Interface()
			scope[field.Name] = value
			if tag := strings.Split(field.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
				scope[tag] = value
			}
		}
		return scope, true
	}

	return nil, false
}
