package participants

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Overland-East-Bay/participant-api/internal/domain"
	"github.com/Overland-East-Bay/participant-api/internal/ports/out/participantrepo"
)

type Service struct {
	repo   participantrepo.Repository
	logger zerolog.Logger
}

func NewService(repo participantrepo.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("component", "participants").Logger(),
	}
}

// Add validates in and stores it under its email, overwriting any existing record.
func (s *Service) Add(ctx context.Context, in ParticipantInput) (domain.Participant, error) {
	if err := ValidateParticipantData(in); err != nil {
		return domain.Participant{}, err
	}
	p := fromInput(in)
	if err := s.repo.Put(ctx, domain.Email(in.Email), p); err != nil {
		return domain.Participant{}, err
	}
	s.logger.Debug().Str("email", in.Email).Msg("participant added")
	return p, nil
}

// ListAll returns every stored record, active or not, in store order.
func (s *Service) ListAll(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{Key: e.Key, Participant: e.Participant})
	}
	return out, nil
}

// ListActiveDetails returns the names of every active participant in store order.
func (s *Service) ListActiveDetails(ctx context.Context) ([]PersonalDetails, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PersonalDetails, 0, len(entries))
	for _, e := range entries {
		if !e.Participant.Active {
			continue
		}
		out = append(out, PersonalDetails{FirstName: e.Participant.FirstName, LastName: e.Participant.LastName})
	}
	return out, nil
}

func (s *Service) GetDetails(ctx context.Context, email domain.Email) (PersonalDetails, error) {
	p, err := s.getActive(ctx, email)
	if err != nil {
		return PersonalDetails{}, err
	}
	return PersonalDetails{FirstName: p.FirstName, LastName: p.LastName}, nil
}

func (s *Service) GetWork(ctx context.Context, email domain.Email) (WorkDetails, error) {
	p, err := s.getActive(ctx, email)
	if err != nil {
		return WorkDetails{}, err
	}
	return WorkDetails{CompanyName: p.CompanyName, Salary: p.Salary, Currency: p.Currency}, nil
}

func (s *Service) GetHome(ctx context.Context, email domain.Email) (HomeDetails, error) {
	p, err := s.getActive(ctx, email)
	if err != nil {
		return HomeDetails{}, err
	}
	return HomeDetails{Country: p.Country, City: p.City}, nil
}

// Delete removes the record entirely. There is no soft delete.
func (s *Service) Delete(ctx context.Context, email domain.Email) error {
	if err := s.repo.Delete(ctx, email); err != nil {
		if errors.Is(err, participantrepo.ErrNotFound) {
			return notFound(MsgNotFound)
		}
		return err
	}
	s.logger.Debug().Str("email", string(email)).Msg("participant deleted")
	return nil
}

// EnsureExists reports NOT_FOUND when nothing is stored under email, active or not.
func (s *Service) EnsureExists(ctx context.Context, email domain.Email) error {
	if _, err := s.repo.Get(ctx, email); err != nil {
		if errors.Is(err, participantrepo.ErrNotFound) {
			return notFound(MsgNotFound)
		}
		return err
	}
	return nil
}

// Update replaces the record stored under email with in. Only field presence is checked;
// the email and date formats are not. The record stays under the original key even when
// in.Email differs.
func (s *Service) Update(ctx context.Context, email domain.Email, in ParticipantInput) (domain.Participant, error) {
	if err := s.EnsureExists(ctx, email); err != nil {
		return domain.Participant{}, err
	}
	if err := ValidatePresence(in); err != nil {
		return domain.Participant{}, err
	}
	p := fromInput(in)
	if err := s.repo.Put(ctx, email, p); err != nil {
		return domain.Participant{}, err
	}
	s.logger.Debug().Str("email", string(email)).Msg("participant updated")
	return p, nil
}

func (s *Service) getActive(ctx context.Context, email domain.Email) (domain.Participant, error) {
	p, err := s.repo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, participantrepo.ErrNotFound) {
			return domain.Participant{}, notFound(MsgNotFoundOrInactive)
		}
		return domain.Participant{}, err
	}
	if !p.Active {
		return domain.Participant{}, notFound(MsgNotFoundOrInactive)
	}
	return p, nil
}

func fromInput(in ParticipantInput) domain.Participant {
	return domain.Participant{
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DOB:         in.DOB,
		CompanyName: in.CompanyName,
		Salary:      in.Salary.Clone(),
		Currency:    in.Currency,
		Country:     in.Country,
		City:        in.City,
		Active:      true,
	}
}
