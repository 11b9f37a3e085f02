package schedule

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so errors point at the snapshot, not at Go fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the required fields of a decoded record such as a *Route or a
// *ScheduledStop. The first violation is returned as a *SchemaError located at path.
func Validate(path string, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return &SchemaError{Path: path, Field: relativeField(verrs[0].Namespace())}
}

// relativeField drops the root type name from a validator namespace,
// "ScheduledStop.times.departure.estimated" becomes "times.departure.estimated".
func relativeField(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
