// Package validation provides the argument assertions used by request
// builders and struct tag validation for configuration.
//
// # Assertions
//
// Assertions return the checked value or an ArgumentError:
//
//	if err := validation.MustObject(vars, "path variables must be an object"); err != nil {
//	    return err
//	}
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    BaseURL string `validate:"omitempty,url"`
//	}
//	err := validation.Validate(settings)
package validation
