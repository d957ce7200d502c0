package endpoint

import (
	"strings"

	"github.com/kbukum/apiclient/validation"
)

// RenderPath replaces every "{key}" in template with the value stored under
// key in variables. Placeholders without a variable stay as they are and
// values are not escaped. Nil variables return the template unchanged; a
// non-object fails with an INVALID_ARGUMENT error.
func RenderPath(template string, variables any) (string, error) {
	if err := validation.MustObject(variables, "Path variables must be object type"); err != nil {
		return "", err
	}
	if validation.IsNil(variables) {
		return template, nil
	}
	out := template
	for _, e := range entries(variables) {
		out = strings.ReplaceAll(out, "{"+e.key+"}", stringOf(e.value))
	}
	return out, nil
}
