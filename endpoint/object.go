package endpoint

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// entry is one key/value pair of an object-typed value.
type entry struct {
	key   string
	value any
}

// entries enumerates a string-keyed map or a struct (json tag names) in
// sorted key order. Nil values are dropped. Callers check IsObject first.
func entries(v any) []entry {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	var out []entry
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if val, ok := present(iter.Value()); ok {
				out = append(out, entry{key: iter.Key().String(), value: val})
			}
		}
	case reflect.Struct:
		out = structEntries(rv, out)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func structEntries(rv reflect.Value, out []entry) []entry {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		fv := rv.Field(i)
		if f.Anonymous && name == "" {
			for fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					break
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				out = structEntries(fv, out)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}
		if val, ok := present(fv); ok {
			out = append(out, entry{key: name, value: val})
		}
	}
	return out
}

// present unwraps interface values and reports false for nil ones.
func present(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil, false
		}
	case reflect.Invalid:
		return nil, false
	}
	if !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}

// indexEntries enumerates a slice or array with decimal indexes as keys.
// Nil elements are dropped.
func indexEntries(v any) []entry {
	rv := reflect.ValueOf(v)
	var out []entry
	for i := 0; i < rv.Len(); i++ {
		if val, ok := present(rv.Index(i)); ok {
			out = append(out, entry{key: strconv.Itoa(i), value: val})
		}
	}
	return out
}

// isList reports whether v is a slice or array other than []byte.
func isList(v any) bool {
	if _, ok := v.([]byte); ok {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// each calls fn for every element of a slice or array.
func each(v any, fn func(any)) {
	rv := reflect.ValueOf(v)
	for i := 0; i < rv.Len(); i++ {
		if val, ok := present(rv.Index(i)); ok {
			fn(val)
		}
	}
}

// stringOf renders a scalar the way it appears in a URL or form field.
// Lists join their elements with commas.
func stringOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return stringOf(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, rv.Len())
		each(v, func(el any) { parts = append(parts, stringOf(el)) })
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

// typeName names a value's type in JavaScript-like terms for type errors.
func typeName(v any) string {
	if v == nil {
		return "undefined"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Func:
		return "function"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return reflect.TypeOf(v).String()
	}
}
