package contracttest

import (
	"context"
	"errors"
	"testing"

	"github.com/Overland-East-Bay/participant-api/internal/domain"
	participantrepoport "github.com/Overland-East-Bay/participant-api/internal/ports/out/participantrepo"
)

type CleanupFunc = func()

type ParticipantRepoFactory func(t *testing.T) (participantrepoport.Repository, CleanupFunc)

func RunParticipantRepo(t *testing.T, newRepo ParticipantRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	if _, err := repo.Get(ctx, "missing@example.com"); !errors.Is(err, participantrepoport.ErrNotFound) {
		t.Fatalf("Get(missing) err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "missing@example.com"); !errors.Is(err, participantrepoport.ErrNotFound) {
		t.Fatalf("Delete(missing) err=%v, want ErrNotFound", err)
	}

	alice := sampleParticipant("alice@example.com", "Alice")
	bob := sampleParticipant("bob@example.com", "Bob")
	carol := sampleParticipant("carol@example.com", "Carol")
	for _, p := range []domain.Participant{alice, bob, carol} {
		if err := repo.Put(ctx, domain.Email(p.Email), p); err != nil {
			t.Fatalf("Put(%s): %v", p.Email, err)
		}
	}

	got, err := repo.Get(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FirstName != "Alice" || !got.Active || string(got.Salary) != `"100"` {
		t.Fatalf("Get()=%+v", got)
	}

	// Overwrite keeps insertion position.
	alice2 := alice
	alice2.FirstName = "Alicia"
	if err := repo.Put(ctx, "alice@example.com", alice2); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	requireKeys(t, repo, "alice@example.com", "bob@example.com", "carol@example.com")

	// Records are copies: mutating a returned value does not leak into the store.
	got, _ = repo.Get(ctx, "alice@example.com")
	got.Salary[1] = 'X'
	again, _ := repo.Get(ctx, "alice@example.com")
	if again.FirstName != "Alicia" || string(again.Salary) != `"100"` {
		t.Fatalf("stored record changed through returned copy: %+v", again)
	}

	if err := repo.Delete(ctx, "bob@example.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(ctx, "bob@example.com"); !errors.Is(err, participantrepoport.ErrNotFound) {
		t.Fatalf("Get(deleted) err=%v, want ErrNotFound", err)
	}
	requireKeys(t, repo, "alice@example.com", "carol@example.com")

	// Re-adding a deleted key appends it.
	if err := repo.Put(ctx, "bob@example.com", bob); err != nil {
		t.Fatalf("Put re-add: %v", err)
	}
	requireKeys(t, repo, "alice@example.com", "carol@example.com", "bob@example.com")

	// The stored key can differ from the record's email field.
	moved := sampleParticipant("new@example.com", "Carol")
	if err := repo.Put(ctx, "carol@example.com", moved); err != nil {
		t.Fatalf("Put under old key: %v", err)
	}
	got, err = repo.Get(ctx, "carol@example.com")
	if err != nil || got.Email != "new@example.com" {
		t.Fatalf("Get(old key)=%+v err=%v", got, err)
	}
	if _, err := repo.Get(ctx, "new@example.com"); !errors.Is(err, participantrepoport.ErrNotFound) {
		t.Fatalf("Get(new key) err=%v, want ErrNotFound", err)
	}
}

func requireKeys(t *testing.T, repo participantrepoport.Repository, want ...domain.Email) {
	t.Helper()
	entries, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != len(want) {
		t.Fatalf("List() len=%d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Key != want[i] {
			t.Fatalf("List()[%d].Key=%q, want %q", i, e.Key, want[i])
		}
	}
}

func sampleParticipant(email, firstName string) domain.Participant {
	return domain.Participant{
		Email:       email,
		FirstName:   firstName,
		LastName:    "Smith",
		DOB:         "1990/01/31",
		CompanyName: "Acme",
		Salary:      domain.SalaryFromString("100"),
		Currency:    "USD",
		Country:     "US",
		City:        "Oakland",
		Active:      true,
	}
}
