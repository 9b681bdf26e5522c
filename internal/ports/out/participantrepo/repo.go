package participantrepo

import (
	"context"

	"github.com/Overland-East-Bay/participant-api/internal/domain"
)

// Repository provides access to stored participants, keyed by email.
//
// Result ordering expectations:
// - List returns records in key insertion order. Overwriting an existing key keeps its position;
//   deleting and re-adding a key moves it to the end.
type Repository interface {
	Get(ctx context.Context, email domain.Email) (domain.Participant, error)
	List(ctx context.Context) ([]Entry, error)

	// Put inserts or overwrites the record stored under email. The key does not have to match
	// p.Email: updates keep the original key even when the body carries a different address.
	Put(ctx context.Context, email domain.Email, p domain.Participant) error
	Delete(ctx context.Context, email domain.Email) error
}

// Entry pairs a stored record with the key it is stored under.
type Entry struct {
	Key         domain.Email
	Participant domain.Participant
}
