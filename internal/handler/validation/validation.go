package validation

import (
	"reflect"
	"strings"

	"fervo/internal/domain/venue"
	"fervo/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the custom binding tags to gin's validator engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("venue_category", venueCategory); err != nil {
		return errs.Wrap(err, "register venue_category")
	}
	return nil
}

// jsonName reports fields by their wire name so error details match the request body.
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func venueCategory(fl validator.FieldLevel) bool {
	_, err := venue.NewCategory(fl.Field().String())
	return err == nil
}
