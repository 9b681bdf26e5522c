package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Participant is the domain representation of an event participant.
type Participant struct {
	Email       string
	FirstName   string
	LastName    string
	DOB         string
	CompanyName string
	Salary      Salary
	Currency    string
	Country     string
	City        string

	Active bool
}

// Salary keeps the caller's JSON literal (string or number) verbatim so it round-trips unchanged.
type Salary []byte

// SalaryFromString builds a Salary holding a JSON string literal.
func SalaryFromString(s string) Salary {
	b, _ := json.Marshal(s)
	return Salary(b)
}

// Present reports whether the salary carries a truthy value: anything other than
// an absent value, null, false, "" or a numeric zero.
func (s Salary) Present() bool {
	raw := bytes.TrimSpace(s)
	if len(raw) == 0 {
		return false
	}
	switch string(raw) {
	case "null", "false", `""`:
		return false
	}
	if raw[0] == '"' {
		return true
	}
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return f != 0
	}
	return true
}

// Clone returns an independent copy.
func (s Salary) Clone() Salary {
	if s == nil {
		return nil
	}
	return append(Salary(nil), s...)
}

func (s Salary) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(s)) == 0 {
		return []byte("null"), nil
	}
	return []byte(s), nil
}

func (s *Salary) UnmarshalJSON(b []byte) error {
	*s = append((*s)[:0], b...)
	return nil
}
