package participants

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Overland-East-Bay/participant-api/internal/domain"
)

func validInput() ParticipantInput {
	return ParticipantInput{
		Email:       "a@b.com",
		FirstName:   "A",
		LastName:    "B",
		DOB:         "2000/01/01",
		CompanyName: "C",
		Salary:      domain.SalaryFromString("100"),
		Currency:    "USD",
		Country:     "US",
		City:        "NY",
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"a@b.c", "first.last@example.co.uk", "x@y.z.w"} {
		assert.True(t, ValidateEmail(s), s)
	}
	for _, s := range []string{"abc", "", "a@b", "a @b.c", "@b.c", "a@.c", "a@b.", "a@b.c\n"} {
		assert.False(t, ValidateEmail(s), "%q", s)
	}
}

func TestValidateDate(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateDate("2024/01/31"))
	assert.True(t, ValidateDate("2024/13/99"), "calendar validity is not checked")
	assert.False(t, ValidateDate("2024-01-31"))
	assert.False(t, ValidateDate("24/01/31"))
	assert.False(t, ValidateDate("2024/1/31"))
	assert.False(t, ValidateDate(" 2024/01/31"))
}

func requireMessage(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)
	var ae *Error
	require.True(t, errors.As(err, &ae), "err=%v (type=%T)", err, err)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, want, ae.Message)
}

func TestValidateParticipantData_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateParticipantData(validInput()))

	numeric := validInput()
	numeric.Salary = domain.Salary("55000.5")
	require.NoError(t, ValidateParticipantData(numeric))
}

func TestValidateParticipantData_EachMissingField(t *testing.T) {
	t.Parallel()

	blank := map[string]func(*ParticipantInput){
		"email":       func(in *ParticipantInput) { in.Email = "" },
		"firstname":   func(in *ParticipantInput) { in.FirstName = "" },
		"lastname":    func(in *ParticipantInput) { in.LastName = "" },
		"dob":         func(in *ParticipantInput) { in.DOB = "" },
		"companyname": func(in *ParticipantInput) { in.CompanyName = "" },
		"salary":      func(in *ParticipantInput) { in.Salary = nil },
		"currency":    func(in *ParticipantInput) { in.Currency = "" },
		"country":     func(in *ParticipantInput) { in.Country = "" },
		"city":        func(in *ParticipantInput) { in.City = "" },
	}
	for name, fn := range blank {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			fn(&in)
			requireMessage(t, ValidateParticipantData(in), MsgAllFieldsRequired)
		})
	}
}

func TestValidateParticipantData_FalsySalary(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`0`, `0.0`, `-0`, `""`, `null`, `false`} {
		in := validInput()
		in.Salary = domain.Salary(raw)
		requireMessage(t, ValidateParticipantData(in), MsgAllFieldsRequired)
	}
	in := validInput()
	in.Salary = domain.Salary(`"0"`)
	require.NoError(t, ValidateParticipantData(in), `the string "0" is truthy`)
}

func TestValidateParticipantData_FirstFailureWins(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Email = "not-an-email"
	in.DOB = "01-01-2000"
	requireMessage(t, ValidateParticipantData(in), MsgInvalidEmail)

	in.City = ""
	requireMessage(t, ValidateParticipantData(in), MsgAllFieldsRequired)

	in = validInput()
	in.DOB = "01-01-2000"
	requireMessage(t, ValidateParticipantData(in), MsgInvalidDOB)
}

func TestValidatePresence_SkipsFormatChecks(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Email = "not-an-email"
	in.DOB = "yesterday"
	require.NoError(t, ValidatePresence(in))

	in.Country = ""
	requireMessage(t, ValidatePresence(in), MsgAllFieldsRequiredUpdate)
}

func TestMustRegister_PanicsOnBadTag(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { newValidator() })
	assert.Panics(t, func() {
		mustRegister(newValidator(), "", func(validator.FieldLevel) bool { return true })
	})
}
