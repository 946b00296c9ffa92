package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"creatorverse/pkg/logger"
	"creatorverse/pkg/model"
	"creatorverse/pkg/sanitizer"
)

// FieldErrors maps a JSON field name to a user-facing message. Empty means valid.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fe))
	for _, f := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(fe), strings.Join(messages, "; "))
}

type CreatorValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCreatorValidator(log *logger.Logger) *CreatorValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]validator.Func{
		"notblank":      validators.NotBlank,
		"trimmed_min":   validateTrimmedMin,
		"absurl":        validateAbsoluteURL,
		"social_handle": validateSocialHandle,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register validator", "tag", tag, "error", err)
		}
	}

	log.Info("Creator validator initialized successfully")

	return &CreatorValidator{
		validate: v,
		logger:   log,
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateTrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= min
}

func validateAbsoluteURL(fl validator.FieldLevel) bool {
	return sanitizer.IsAbsoluteURL(fl.Field().String())
}

func validateSocialHandle(fl validator.FieldLevel) bool {
	platform, ok := model.ParsePlatform(fl.Param())
	if !ok {
		return false
	}
	return sanitizer.IsValidHandle(platform, fl.Field().String())
}

// Validate checks the raw draft. Every field is reported, not just the first failure.
func (v *CreatorValidator) Validate(c *model.Creator) FieldErrors {
	err := v.validate.Struct(c)
	if err == nil {
		return FieldErrors{}
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		v.logger.Error("Unexpected validator failure", "error", err)
		return FieldErrors{"_": "Creator could not be validated"}
	}
	return translateValidationErrors(validationErrs)
}

func translateValidationErrors(errs validator.ValidationErrors) FieldErrors {
	out := make(FieldErrors, len(errs))
	for _, err := range errs {
		out[err.Field()] = message(err)
	}
	return out
}

func message(err validator.FieldError) string {
	switch err.Field() {
	case "name":
		return "Name is required"
	case "url":
		if err.Tag() == "notblank" {
			return "URL is required"
		}
		return "Please enter a valid URL"
	case "description":
		if err.Tag() == "notblank" {
			return "Description is required"
		}
		return fmt.Sprintf("Description must be at least %s characters", err.Param())
	case "imageURL":
		return "Please enter a valid image URL"
	}

	if err.Tag() == "social_handle" {
		platform, _ := model.ParsePlatform(err.Param())
		return fmt.Sprintf("Please enter a valid %s handle or URL", platform.DisplayName())
	}
	return fmt.Sprintf("%s is invalid", err.Field())
}
