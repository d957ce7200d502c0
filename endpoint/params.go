package endpoint

import (
	"net/url"

	"github.com/kbukum/apiclient/validation"
)

// ToQuery converts params into query values. url.Values (and plain
// map[string][]string) pass through unchanged and nil yields nil. Lists add
// one entry per element under the same key; scalars add one entry.
func ToQuery(params any) (url.Values, error) {
	switch p := params.(type) {
	case url.Values:
		return p, nil
	case map[string][]string:
		return url.Values(p), nil
	}
	if validation.IsNil(params) {
		return nil, nil
	}
	if !validation.IsObject(params) {
		return nil, validation.MustObject(params, "Argument must be 'object' type")
	}

	q := url.Values{}
	for _, e := range entries(params) {
		if isList(e.value) {
			each(e.value, func(el any) { q.Add(e.key, stringOf(el)) })
			continue
		}
		q.Add(e.key, stringOf(e.value))
	}
	return q, nil
}
