package utils

import (
	"clinic-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	personNameRegex  = regexp.MustCompile(constvars.RegexPersonName)
	phoneDigitsRegex = regexp.MustCompile(constvars.RegexPhoneDigits)
	timeHHMMRegex    = regexp.MustCompile(constvars.RegexTimeHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("person_name", validatePersonName)
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
	validate.RegisterValidation("country_code", validateCountryCode)
	validate.RegisterValidation("not_future_date", validateNotFutureDate)
	validate.RegisterValidation("clinic_hours", validateClinicHours)
	validate.RegisterValidation("appointment_state", validateAppointmentState)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsWithinClinicHours reports whether an HH:MM time falls inside opening
// hours, the closing hour itself excluded.
func IsWithinClinicHours(value string) bool {
	if !timeHHMMRegex.MatchString(value) {
		return false
	}
	parsed, err := time.Parse(constvars.TimeLayout, value)
	if err != nil {
		return false
	}
	return parsed.Hour() >= constvars.ClinicOpeningHour && parsed.Hour() < constvars.ClinicClosingHour
}

// IsNotFutureDate reports whether a YYYY-MM-DD date is today or earlier.
func IsNotFutureDate(value string, now time.Time) bool {
	date, err := time.Parse(constvars.DateLayout, value)
	if err != nil {
		return false
	}
	return date.Format(constvars.DateLayout) <= now.Format(constvars.DateLayout)
}

func IsSupportedCountryCode(code string) bool {
	for _, supported := range constvars.PhoneCountryCodes {
		if code == supported {
			return true
		}
	}
	return false
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := specialCharRegex.MatchString(password)
	hasUppercase := uppercaseRegex.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePersonName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return strings.TrimSpace(name) != "" && personNameRegex.MatchString(name)
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	return phoneDigitsRegex.MatchString(fl.Field().String())
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return IsSupportedCountryCode(fl.Field().String())
}

func validateNotFutureDate(fl validator.FieldLevel) bool {
	return IsNotFutureDate(fl.Field().String(), time.Now())
}

func validateClinicHours(fl validator.FieldLevel) bool {
	return IsWithinClinicHours(fl.Field().String())
}

func validateAppointmentState(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.AppointmentStatusPlanned, constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled:
		return true
	}
	return false
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleAdmin || value == constvars.RolePractitioner
}
