// Package form binds submitted form values onto entities through an explicit
// mapping table: every Field names the form key, the validator rule applied to
// the trimmed value and the function that writes it onto the target.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired      = "This field is required."
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	MsgInvalidImage  = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

// Field is one row of a mapping table.
type Field[T any] struct {
	Name string
	// Rule is a validator tag, e.g. "required,max=150". Empty means no rule.
	Rule string
	// NoTrim keeps surrounding whitespace; set for passwords.
	NoTrim bool
	// Apply writes the validated value onto dst. A returned error is reported
	// as a field error with its message.
	Apply func(dst *T, value string) error
}

// Schema is an ordered mapping table.
type Schema[T any] []Field[T]

// Bind validates every field of values and applies the valid ones onto dst.
// dst may be partially written when errors are returned; callers bind onto a
// copy they discard on failure.
func (s Schema[T]) Bind(values url.Values, dst *T) Errors {
	errs := Errors{}
	for _, f := range s {
		value := values.Get(f.Name)
		if !f.NoTrim {
			value = strings.TrimSpace(value)
		}
		if f.Rule != "" {
			if err := validate.Var(value, f.Rule); err != nil {
				errs.Add(f.Name, translate(err))
				continue
			}
		}
		if f.Apply == nil {
			continue
		}
		if err := f.Apply(dst, value); err != nil {
			errs.Add(f.Name, err.Error())
		}
	}
	return errs
}

// Initial returns the submitted values of the schema's fields, for re-rendering.
func (s Schema[T]) Initial(values url.Values) map[string]string {
	out := make(map[string]string, len(s))
	for _, f := range s {
		out[f.Name] = values.Get(f.Name)
	}
	return out
}

func translate(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "numeric", "number":
		return MsgInvalidChoice
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

// Errors maps a field name to its messages. The "__all__" key holds
// form-wide errors.
type Errors map[string][]string

const NonField = "__all__"

func (e Errors) Add(field, msg string) { e[field] = append(e[field], msg) }

func (e Errors) Valid() bool { return len(e) == 0 }

func (e Errors) Has(field string) bool { return len(e[field]) > 0 }

// First returns the first message for field, or "".
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}
