// file: internals/helpers/validator.go
package helper

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate is the shared validator instance; validator.v10 caches struct
// metadata, so reusing one instance is cheaper than validator.New() per
// request.
func Validate(s any) error {
	return validate.Struct(s)
}
