package users

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"infobot/models/entities"
	"infobot/utils/databases"
)

func newTestRepo(t *testing.T) *Impl {
	t.Helper()

	conn := databases.NewFromURL(filepath.Join(t.TempDir(), "users_test.db"))
	if err := conn.Run(); err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(conn.Shutdown)

	if err := conn.Migrate(&entities.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(conn)
}

func TestGetOrCreate_CreatesOnceAndReturnsExisting(t *testing.T) {
	repo := newTestRepo(t)

	first, err := repo.GetOrCreate(42, "alice")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first.ID == 0 || first.TelegramID != 42 || first.Username != "alice" {
		t.Fatalf("unexpected user: %+v", first)
	}
	if first.IsPremium || first.RequestsToday != 0 || first.LastRequestDate != "" {
		t.Fatalf("unexpected defaults: %+v", first)
	}

	second, err := repo.GetOrCreate(42, "renamed")
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if second.ID != first.ID || second.Username != "alice" {
		t.Fatalf("expected existing row, got %+v", second)
	}
	if n := repo.Count(); n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
}

func TestFindByTelegramID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.FindByTelegramID(7); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSetPremium_UnknownUserCreatesNothing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.SetPremium(99, time.Now())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if n := repo.Count(); n != 0 {
		t.Fatalf("expected no rows, got %d", n)
	}
}

func TestSetPremium_SetsFlagAndExpiry(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetOrCreate(5, "bob"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	expires := time.Date(2026, 11, 14, 8, 0, 0, 0, time.UTC)
	if _, err := repo.SetPremium(5, expires); err != nil {
		t.Fatalf("SetPremium: %v", err)
	}

	got, err := repo.FindByTelegramID(5)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.IsPremium || got.PremiumExpires == nil || !got.PremiumExpires.Equal(expires) {
		t.Fatalf("premium not persisted: %+v", got)
	}
	if n := repo.CountPremium(); n != 1 {
		t.Fatalf("expected 1 premium user, got %d", n)
	}
}

func TestRecordRequest_IncrementsAndResetsOnNewDay(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetOrCreate(1, ""); err != nil {
		t.Fatalf("seed: %v", err)
	}

	day1 := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		u, err := repo.RecordRequest(1, day1)
		if err != nil {
			t.Fatalf("RecordRequest #%d: %v", i, err)
		}
		if u.RequestsToday != i || u.LastRequestDate != "2026-10-15" {
			t.Fatalf("after #%d: %+v", i, u)
		}
	}

	u, err := repo.RecordRequest(1, day1.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("RecordRequest next day: %v", err)
	}
	if u.RequestsToday != 1 || u.LastRequestDate != "2026-10-16" {
		t.Fatalf("expected reset then increment, got %+v", u)
	}

	stored, _ := repo.FindByTelegramID(1)
	if stored.RequestsToday != 1 {
		t.Fatalf("counter not persisted: %+v", stored)
	}
}

func TestRecordRequest_UnknownUser(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.RecordRequest(3, time.Now()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetIfNewDay(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 1, 0, time.UTC)
	user := entities.User{RequestsToday: 5, LastRequestDate: "2026-10-14"}

	if !ResetIfNewDay(&user, now) {
		t.Fatal("expected reset")
	}
	if user.RequestsToday != 0 || user.LastRequestDate != "2026-10-15" {
		t.Fatalf("unexpected state: %+v", user)
	}
	user.RequestsToday = 2
	if ResetIfNewDay(&user, now) || user.RequestsToday != 2 {
		t.Fatalf("unexpected second reset: %+v", user)
	}
}
