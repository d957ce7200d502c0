package endpoint

import (
	"reflect"
	"strings"

	"github.com/kbukum/apiclient/errors"
	"github.com/kbukum/apiclient/httpclient"
	"github.com/kbukum/apiclient/validation"
)

const upperhex = "0123456789ABCDEF"

// URLEncodedStringify encodes an object as key=value pairs joined by "&",
// escaping like JavaScript's encodeURIComponent and writing spaces as "+".
// Lists use their indexes as keys. Nil or zero input yields ""; any other
// non-object fails with INVALID_TYPE.
func URLEncodedStringify(object any) (string, error) {
	if validation.IsNil(object) {
		return "", nil
	}
	if isList(object) {
		return joinPairs(indexEntries(object)), nil
	}
	if !validation.IsObject(object) {
		if reflect.ValueOf(object).IsZero() {
			return "", nil
		}
		return "", errors.InvalidType("object", typeName(object))
	}

	return joinPairs(entries(object)), nil
}

func joinPairs(es []entry) string {
	pairs := make([]string, 0, len(es))
	for _, e := range es {
		pairs = append(pairs, encodeURIComponent(e.key)+"="+encodeURIComponent(stringOf(e.value)))
	}
	return strings.ReplaceAll(strings.Join(pairs, "&"), "%20", "+")
}

// URLEncoded is the DataSerializer for application/x-www-form-urlencoded bodies.
func URLEncoded(data any) (any, error) {
	s, err := URLEncodedStringify(data)
	if err != nil {
		return nil, err
	}
	return httpclient.FormBody(s), nil
}

// Multipart is the DataSerializer for multipart/form-data bodies. A
// *httpclient.MultipartBody passes through. Otherwise every key becomes one
// part, or one part per element for lists. []byte and httpclient.FileField
// values become file parts.
func Multipart(data any) (any, error) {
	switch d := data.(type) {
	case *httpclient.MultipartBody:
		return d, nil
	case httpclient.MultipartBody:
		return &d, nil
	}
	if err := validation.MustObject(data, "Multipart data must be object type"); err != nil {
		return nil, err
	}

	body := &httpclient.MultipartBody{}
	if validation.IsNil(data) {
		return body, nil
	}
	for _, e := range entries(data) {
		if isList(e.value) {
			each(e.value, func(el any) { appendPart(body, e.key, el) })
			continue
		}
		appendPart(body, e.key, e.value)
	}
	return body, nil
}

// JSON leaves data untouched for the transport to encode.
func JSON(data any) (any, error) {
	return data, nil
}

func appendPart(body *httpclient.MultipartBody, key string, v any) {
	switch x := v.(type) {
	case httpclient.FileField:
		if x.FieldName == "" {
			x.FieldName = key
		}
		body.AddFile(x)
	case *httpclient.FileField:
		appendPart(body, key, *x)
	case []byte:
		body.AddFile(httpclient.FileField{FieldName: key, FileName: key, Data: x})
	default:
		body.AddField(key, stringOf(v))
	}
}

// encodeURIComponent escapes everything except A-Z a-z 0-9 and - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
