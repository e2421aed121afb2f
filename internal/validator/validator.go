package validator

import (
	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

// Validator checks config structs and options-gen Options.
// Nested structs tagged `required` must be non-zero.
var Validator = validator.New(validator.WithRequiredStructEnabled())

func init() {
	optsGenValidator.Set(Validator)
}
