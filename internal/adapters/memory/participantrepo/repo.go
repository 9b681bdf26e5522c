package participantrepo

import (
	"context"
	"sync"

	"github.com/Overland-East-Bay/participant-api/internal/domain"
	"github.com/Overland-East-Bay/participant-api/internal/ports/out/participantrepo"
)

// Repo is an in-memory implementation of participantrepo.Repository.
// It is safe for concurrent use; concurrent writes to the same key are last-writer-wins.
type Repo struct {
	mu sync.RWMutex

	byEmail map[domain.Email]domain.Participant
	order   []domain.Email
}

func NewRepo() *Repo {
	return &Repo{
		byEmail: make(map[domain.Email]domain.Participant),
	}
}

func (r *Repo) Get(ctx context.Context, email domain.Email) (domain.Participant, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byEmail[email]
	if !ok {
		return domain.Participant{}, participantrepo.ErrNotFound
	}
	return cloneParticipant(p), nil
}

func (r *Repo) List(ctx context.Context) ([]participantrepo.Entry, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]participantrepo.Entry, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, participantrepo.Entry{Key: k, Participant: cloneParticipant(r.byEmail[k])})
	}
	return out, nil
}

func (r *Repo) Put(ctx context.Context, email domain.Email, p domain.Participant) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; !ok {
		r.order = append(r.order, email)
	}
	r.byEmail[email] = cloneParticipant(p)
	return nil
}

func (r *Repo) Delete(ctx context.Context, email domain.Email) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; !ok {
		return participantrepo.ErrNotFound
	}
	delete(r.byEmail, email)
	for i, k := range r.order {
		if k == email {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored records.
func (r *Repo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}

func cloneParticipant(p domain.Participant) domain.Participant {
	out := p
	out.Salary = p.Salary.Clone()
	return out
}
