// Package validator adapts go-playground/validator to echo and to the usecases.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"natours/internal/domain/entity"
	domainerrors "natours/internal/domain/errors"
	"natours/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var indexSuffix = regexp.MustCompile(`\[\d+\]$`)

// messages are keyed by "<Struct>.<jsonField>.<tag>".
var messages = map[string]string{
	"User.name.required":  "Please tell us your name!",
	"User.email.required": "Please provide your email",
	"User.email.email":    "Please provide a valid email",
	"User.role.role":      "Role is either: user, guide, lead-guide, admin",

	"Credentials.password.required":        "Please provide a password",
	"Credentials.password.min":             "A password must have more or equal then 8 characters",
	"Credentials.passwordConfirm.required": "Please confirm your password",
	"Credentials.passwordConfirm.eqfield":  "Passwords are not the same!",

	"Tour.name.required":         "A tour must have a name",
	"Tour.name.max":              "A tour name must have less or equal then 40 characters",
	"Tour.name.min":              "A tour name must have more or equal then 10 characters",
	"Tour.duration.required":     "A tour must have a duration",
	"Tour.maxGroupSize.required": "A tour must have a group size",
	"Tour.difficulty.required":   "A tour must have a difficulty",
	"Tour.difficulty.oneof":      "Difficulty is either: easy, medium, difficult",
	"Tour.ratingsAverage.gte":    "Rating must be above 1.0",
	"Tour.ratingsAverage.lte":    "Rating must be below 5.0",
	"Tour.price.required":        "A tour must have a price",
	"Tour.priceDiscount.ltfield": "Discount price (%v) should be below regular price",
	"Tour.summary.required":      "A tour must have a description",
	"Tour.imageCover.required":   "A tour must have a cover image",

	"Review.review.required": "Review can not be empty!",
	"Review.rating.required": "A review must have a rating",
	"Review.rating.gte":      "Rating must be above 1.0",
	"Review.rating.lte":      "Rating must be below 5.0",
	"Review.tour.required":   "Review must belong to a tour.",
	"Review.user.required":   "Review must belong to a user",

	"Booking.tour.required":  "Booking must belong to a Tour!",
	"Booking.user.required":  "Booking must belong to a User!",
	"Booking.price.required": "Booking must have a price.",
}

// CustomValidator implements echo.Validator and service.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(refValue, entity.Ref[entity.Tour]{}, entity.Ref[entity.User]{})
	if err := v.RegisterValidation("role", validateRole); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: v}
}

// Validate joins every failed rule into one 400 validation error.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "failed to validate input")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe))
	}

	return domainerrors.NewValidationError(msgs...)
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[owner(fe)+"."+fe.Field()+"."+fe.Tag()]; ok {
		if strings.Contains(msg, "%v") {
			return fmt.Sprintf(msg, fe.Value())
		}

		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must have %s items", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// owner names the struct declaring the failed field, e.g. "User" for "signupForm.User.Name".
func owner(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) < 2 {
		return ""
	}

	return indexSuffix.ReplaceAllString(parts[len(parts)-2], "")
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// refValue validates a reference as its id, empty when unset.
func refValue(field reflect.Value) any {
	ref, ok := field.Interface().(interface{ RefID() uuid.UUID })
	if !ok || ref.RefID() == uuid.Nil {
		return ""
	}

	return ref.RefID().String()
}

func validateRole(fl validator.FieldLevel) bool {
	return entity.Role(fl.Field().String()).IsValid()
}
