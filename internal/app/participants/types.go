package participants

import "github.com/Overland-East-Bay/participant-api/internal/domain"

// ParticipantInput carries the caller-supplied fields for add and update.
// Every field is required; salary presence follows domain.Salary.Present.
type ParticipantInput struct {
	Email       string        `validate:"required"`
	FirstName   string        `validate:"required"`
	LastName    string        `validate:"required"`
	DOB         string        `validate:"required"`
	CompanyName string        `validate:"required"`
	Salary      domain.Salary `validate:"required"`
	Currency    string        `validate:"required"`
	Country     string        `validate:"required"`
	City        string        `validate:"required"`
}

// PersonalDetails is the name projection of a participant.
type PersonalDetails struct {
	FirstName string
	LastName  string
}

// WorkDetails is the employment projection of a participant.
type WorkDetails struct {
	CompanyName string
	Salary      domain.Salary
	Currency    string
}

// HomeDetails is the location projection of a participant.
type HomeDetails struct {
	Country string
	City    string
}

// Entry is a stored participant together with the key it is stored under.
type Entry struct {
	Key         domain.Email
	Participant domain.Participant
}
