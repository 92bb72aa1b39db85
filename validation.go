package cashbook

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate holds the shared validator instance used by the entity
// constructors and the mutation layer.
var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	return validate.Struct(v)
}

// newID returns a fresh unique entity id.
func newID() string { return uuid.NewString() }
