package participants

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

const (
	MsgAllFieldsRequired       = "All fields are required."
	MsgAllFieldsRequiredUpdate = "All fields are required and must be valid."
	MsgInvalidEmail            = "Invalid email format."
	MsgInvalidDOB              = "Date of birth must be in YYYY/MM/DD format."
	MsgNotFoundOrInactive      = "Participant not found or inactive"
	MsgNotFound                = "Participant not found"
)

func validationError(msg string) *Error {
	return &Error{Status: 400, Code: "VALIDATION_ERROR", Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Status: 404, Code: "NOT_FOUND", Message: msg}
}
