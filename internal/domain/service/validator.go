package service

// Validator checks the declared rules of a struct. Failures are 400 validation errors.
type Validator interface {
	Validate(i any) error
}
