// Package validate holds the request body validator shared by the v1
// handlers.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New(validator.WithRequiredStructEnabled())

func Struct(s any) error {
	return v.Struct(s)
}
