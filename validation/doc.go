// Package validation produces validation-kind error conditions from invalid
// input. It supports struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type CreateUserCmd struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//	if err := validation.Validate(cmd); err != nil {
//	    return err // a *errors.Condition of kind validation
//	}
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(name != "", "name", "name is required")
//	v.RequiredUUID("id", rawID)
//	if err := v.Error(); err != nil { ... }
//
// Either way the resulting condition carries a "fields" detail listing every
// failed field, which the translate package surfaces to clients.
package validation
