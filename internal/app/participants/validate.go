package participants

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Overland-East-Bay/participant-api/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	datePattern  = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
)

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// required on a salary means "truthy", not "non-nil".
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		s, ok := field.Interface().(domain.Salary)
		if !ok || !s.Present() {
			return ""
		}
		return string(s)
	}, domain.Salary{})
	mustRegister(v, "participant_email", func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String())
	})
	mustRegister(v, "participant_dob", func(fl validator.FieldLevel) bool {
		return ValidateDate(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// ValidateEmail is a coarse syntactic check: something@something.something with no whitespace.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateDate checks the YYYY/MM/DD shape only; calendar validity is not checked.
func ValidateDate(s string) bool {
	return datePattern.MatchString(s)
}

// ValidateParticipantData runs the add-path checks and returns the first failure:
// presence of all fields, then email format, then date of birth format.
func ValidateParticipantData(in ParticipantInput) error {
	if err := validate.Struct(in); err != nil {
		return validationError(MsgAllFieldsRequired)
	}
	if err := validate.Var(in.Email, "participant_email"); err != nil {
		return validationError(MsgInvalidEmail)
	}
	if err := validate.Var(in.DOB, "participant_dob"); err != nil {
		return validationError(MsgInvalidDOB)
	}
	return nil
}

// ValidatePresence runs the presence check only. Updates use it without the format checks.
func ValidatePresence(in ParticipantInput) error {
	if err := validate.Struct(in); err != nil {
		return validationError(MsgAllFieldsRequiredUpdate)
	}
	return nil
}
