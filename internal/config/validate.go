package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("homepath", func(fl validator.FieldLevel) bool {
		return ValidatePath(fl.Field().String(), "") == nil
	})
	return v
}

// ValidatePath checks that the path is absolute or starts with ~.
// Empty is allowed (means not configured).
func ValidatePath(path, fieldName string) error {
	if path == "" || strings.HasPrefix(path, "~") {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// check validates c and converts the first failure into a readable error.
func (c Config) check() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "homepath":
		return ValidatePath(fmt.Sprint(fe.Value()), fe.Field())
	case "oneof":
		return fmt.Errorf("invalid %s %q: must be %s", fe.Field(), fe.Value(), formatOptions(strings.Fields(fe.Param())))
	}
	return fmt.Errorf("invalid %s: failed %q check", fe.Field(), fe.Tag())
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
