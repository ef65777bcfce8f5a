package form

import "fmt"

// UnknownFormError is returned when a form name is not in the catalog.
type UnknownFormError struct {
	Name string
}

func (e *UnknownFormError) Error() string {
	return fmt.Sprintf("unknown form %q", e.Name)
}

// UnknownFieldError is returned when a field name is not declared by a form.
type UnknownFieldError struct {
	Form  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q in form %s", e.Field, e.Form)
}
