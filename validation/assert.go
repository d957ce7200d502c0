package validation

import (
	"reflect"

	"github.com/kbukum/apiclient/errors"
)

// IsObject reports whether v is object-typed: a map keyed by strings, a
// struct, or a non-nil pointer to either.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	default:
		return false
	}
}

// IsNil reports nil interfaces and treats typed nil pointers, maps, slices and funcs as nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// NotNull rejects nil values.
func NotNull(v any, msg ...string) error {
	if IsNil(v) {
		return errors.InvalidArgument("notNull", first(msg))
	}
	return nil
}

// NotEmptyString rejects anything that is not a non-empty string.
func NotEmptyString(v any, msg ...string) error {
	s, ok := v.(string)
	if !ok || s == "" {
		return errors.InvalidArgument("notEmptyString", first(msg))
	}
	return nil
}

// NotEmptyObject rejects nil and non-object values.
func NotEmptyObject(v any, msg ...string) error {
	if IsNil(v) || !IsObject(v) {
		return errors.InvalidArgument("notEmptyObject", first(msg))
	}
	return nil
}

// MustObject accepts nil or an object-typed value and rejects everything else.
func MustObject(v any, msg ...string) error {
	if IsNil(v) || IsObject(v) {
		return nil
	}
	m := first(msg)
	if m == "" {
		m = "Argument must be object type"
	}
	return errors.InvalidArgument("mustObject", m)
}

func first(msg []string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return ""
}
