package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"loginsvc/internal/domain"
)

func TestAccountRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	a, err := db.Create(ctx, "bob", "Bob", "hash")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.UserID != "bob" || a.DisplayName != "Bob" {
		t.Errorf("unexpected account: %+v", a)
	}

	got, err := db.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.DisplayName != "Bob" {
		t.Error("failed to retrieve account")
	}

	missing, err := db.Get(ctx, "ghost")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown user")
	}
}

func TestAccountRepository_Duplicate(t *testing.T) {
	db := New()
	ctx := context.Background()

	if _, err := db.Create(ctx, "bob", "Bob", "hash1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := db.Create(ctx, "bob", "Other", "hash2")
	if err != domain.ErrDuplicateAccount {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}

	// The original record is unmodified.
	got, _ := db.Get(ctx, "bob")
	if got.DisplayName != "Bob" || got.PasswordHash != "hash1" {
		t.Errorf("original account was modified: %+v", got)
	}
}

func TestSessionRepository(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, "token123", "bob", time.Now().UTC()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sess, err := repo.GetByToken(ctx, "token123")
	if err != nil {
		t.Fatalf("GetByToken: %v", err)
	}
	if sess == nil || sess.UserID != "bob" {
		t.Errorf("expected session for bob, got %+v", sess)
	}

	sess, err = repo.GetByToken(ctx, "garbage")
	if err != nil {
		t.Fatalf("GetByToken garbage: %v", err)
	}
	if sess != nil {
		t.Error("expected nil for unknown token")
	}
}

func TestConcurrentCreate(t *testing.T) {
	db := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	dup := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := db.Create(ctx, "race", "Race", "hash"); err != nil {
				dup <- err
			}
		}()
	}
	wg.Wait()
	close(dup)

	// Exactly one goroutine wins.
	failures := 0
	for err := range dup {
		if err != domain.ErrDuplicateAccount {
			t.Errorf("unexpected error: %v", err)
		}
		failures++
	}
	if failures != 15 {
		t.Errorf("expected 15 duplicate failures, got %d", failures)
	}
}
