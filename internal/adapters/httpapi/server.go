package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/rs/zerolog"

	"github.com/Overland-East-Bay/participant-api/internal/app/participants"
	"github.com/Overland-East-Bay/participant-api/internal/domain"
)

const welcomeMessage = "Welcome to the Census Application API. Use the provided endpoints to interact with the system."

// Server is the HTTP adapter over the participants service.
type Server struct {
	Participants *participants.Service
}

func NewServer(svc *participants.Service) *Server {
	return &Server{Participants: svc}
}

// ParticipantBody is the request body of add and update. Unknown fields, including active,
// are ignored.
type ParticipantBody struct {
	Email       string        `json:"email"`
	FirstName   string        `json:"firstname"`
	LastName    string        `json:"lastname"`
	DOB         string        `json:"dob"`
	CompanyName string        `json:"companyname"`
	Salary      domain.Salary `json:"salary"`
	Currency    string        `json:"currency"`
	Country     string        `json:"country"`
	City        string        `json:"city"`
}

// Participant is the wire form of a stored record.
type Participant struct {
	Email       string        `json:"email"`
	FirstName   string        `json:"firstname"`
	LastName    string        `json:"lastname"`
	DOB         string        `json:"dob"`
	CompanyName string        `json:"companyname"`
	Salary      domain.Salary `json:"salary"`
	Currency    string        `json:"currency"`
	Country     string        `json:"country"`
	City        string        `json:"city"`
	Active      bool          `json:"active"`
}

type PersonalDetails struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type WorkDetails struct {
	CompanyName string        `json:"companyname"`
	Salary      domain.Salary `json:"salary"`
	Currency    string        `json:"currency"`
}

type HomeDetails struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ParticipantResponse struct {
	Message string      `json:"message"`
	Data    Participant `json:"data"`
}

type ListParticipantsResponse struct {
	Participants ParticipantMap `json:"participants"`
}

// ParticipantMap encodes as a JSON object keyed by storage key, preserving store order.
type ParticipantMap []participants.Entry

func (m ParticipantMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(string(e.Key))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(toParticipant(e.Participant))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Server) Welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: welcomeMessage})
}

func (s *Server) AddParticipant(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeParticipantBody(w, r)
	if !ok {
		return
	}
	p, err := s.Participants.Add(r.Context(), in)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	auditLog(r, "participant added", p.Email)
	writeJSON(w, http.StatusCreated, ParticipantResponse{
		Message: "Participant added successfully",
		Data:    toParticipant(p),
	})
}

func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	entries, err := s.Participants.ListAll(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ListParticipantsResponse{Participants: ParticipantMap(entries)})
}

func (s *Server) ListActiveDetails(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Participants.ListActiveDetails(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	out := make([]PersonalDetails, 0, len(ds))
	for _, d := range ds {
		out = append(out, PersonalDetails{FirstName: d.FirstName, LastName: d.LastName})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) GetParticipantDetails(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(w, r)
	if !ok {
		return
	}
	d, err := s.Participants.GetDetails(r.Context(), email)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PersonalDetails{FirstName: d.FirstName, LastName: d.LastName})
}

func (s *Server) GetParticipantWork(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(w, r)
	if !ok {
		return
	}
	d, err := s.Participants.GetWork(r.Context(), email)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, WorkDetails{CompanyName: d.CompanyName, Salary: d.Salary, Currency: d.Currency})
}

func (s *Server) GetParticipantHome(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(w, r)
	if !ok {
		return
	}
	d, err := s.Participants.GetHome(r.Context(), email)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, HomeDetails{Country: d.Country, City: d.City})
}

func (s *Server) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(w, r)
	if !ok {
		return
	}
	if err := s.Participants.Delete(r.Context(), email); err != nil {
		writeAppError(w, r, err)
		return
	}
	auditLog(r, "participant deleted", string(email))
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Participant deleted successfully"})
}

func (s *Server) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	email, ok := emailParam(w, r)
	if !ok {
		return
	}
	// An unknown key is 404 regardless of what the body holds.
	if err := s.Participants.EnsureExists(r.Context(), email); err != nil {
		writeAppError(w, r, err)
		return
	}
	in, ok := decodeParticipantBody(w, r)
	if !ok {
		return
	}
	p, err := s.Participants.Update(r.Context(), email, in)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	auditLog(r, "participant updated", string(email))
	writeJSON(w, http.StatusOK, ParticipantResponse{
		Message: "Participant updated successfully",
		Data:    toParticipant(p),
	})
}

// emailParam binds the {email} path segment, percent-decoding it exactly once.
func emailParam(w http.ResponseWriter, r *http.Request) (domain.Email, bool) {
	raw := chi.URLParam(r, "email")
	// chi routes on RawPath when it is set and on the already-decoded Path otherwise.
	if r.URL.RawPath == "" {
		raw = url.PathEscape(raw)
	}
	var email string
	err := runtime.BindStyledParameterWithOptions("simple", "email", raw, &email, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid email parameter.")
		return "", false
	}
	return domain.Email(email), true
}

// decodeParticipantBody reads a JSON object body. An empty body decodes to an empty input so
// that presence validation reports the missing fields.
func decodeParticipantBody(w http.ResponseWriter, r *http.Request) (participants.ParticipantInput, bool) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request payload.")
		return participants.ParticipantInput{}, false
	}
	var body ParticipantBody
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request payload.")
			return participants.ParticipantInput{}, false
		}
	}
	return participants.ParticipantInput{
		Email:       body.Email,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		DOB:         body.DOB,
		CompanyName: body.CompanyName,
		Salary:      body.Salary,
		Currency:    body.Currency,
		Country:     body.Country,
		City:        body.City,
	}, true
}

func toParticipant(p domain.Participant) Participant {
	return Participant{
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DOB:         p.DOB,
		CompanyName: p.CompanyName,
		Salary:      p.Salary,
		Currency:    p.Currency,
		Country:     p.Country,
		City:        p.City,
		Active:      p.Active,
	}
}

func auditLog(r *http.Request, msg string, email string) {
	admin, _ := AdminFromContext(r.Context())
	zerolog.Ctx(r.Context()).Info().Str("admin", admin).Str("email", email).Msg(msg)
}
