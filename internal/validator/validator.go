package validator

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

// Error lists every invalid field of a value.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := lo.Keys(e.Fields)
	slices.Sort(keys)
	problems := lo.Map(keys, func(k string, _ int) string { return k + ": " + e.Fields[k] })
	return "validation failed: " + strings.Join(problems, "; ")
}

func Validate(v Validator) error {
	if fields := v.Validate(); len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
