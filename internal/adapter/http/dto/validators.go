package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"hosted-checkout/internal/service"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
		_ = v.RegisterValidation("plan_id", validatePlanID)
		_ = v.RegisterValidation("https_url", validateHTTPSURL)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// validatePlanID accepts platform plan identifiers ("plan_" + 6-64 chars).
func validatePlanID(fl validator.FieldLevel) bool {
	return service.PlanIDPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateHTTPSURL accepts absolute https URLs. Blank is allowed so an
// optional URL can be cleared; use "required" to enforce presence.
func validateHTTPSURL(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	return service.IsHTTPSURL(raw)
}

// ValidationFields converts binding errors into messages keyed by JSON path
// ("basePlanId", "bumps.0.title"). It returns nil for anything that is not a
// validator.ValidationErrors, which callers treat as malformed JSON.
func ValidationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe.Namespace())] = fieldMessage(fe)
	}
	return fields
}

// fieldPath turns "CompanyConfigRequest.bumps[1].title" into "bumps.1.title".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	ns = strings.ReplaceAll(ns, "[", ".")
	return strings.ReplaceAll(ns, "]", "")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("At most %s items are allowed", fe.Param())
		}
		if fe.Kind() == reflect.Int {
			return fmt.Sprintf("Must be at most %s", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "plan_id":
		return "Plan ID must start with plan_ and contain 6-64 characters"
	case "https_url":
		return "URL must start with https://"
	default:
		return "Invalid value"
	}
}
