package attendance

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// fakeStore is an in-memory Store for unit tests.
type fakeStore struct {
	users   []User
	records []Record
}

func (f *fakeStore) CreateUser(_ context.Context, name, email, role string, department *string) (User, error) {
	u := User{ID: uuid.NewString(), Name: name, Email: email, Role: role, Department: department}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeStore) ListUsers(_ context.Context) ([]User, error) {
	return f.users, nil
}

func (f *fakeStore) GetUser(_ context.Context, id string) (*User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SearchUsers(_ context.Context, q string) ([]User, error) {
	q = strings.ToLower(q)
	var out []User
	for _, u := range f.users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateRecord(_ context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeStore) ListRecordsByUser(_ context.Context, userID string) ([]Record, error) {
	var out []Record
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	// Literal string ordering, matching ORDER BY date DESC on a TEXT column.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (f *fakeStore) ListRecordsByDate(_ context.Context, date string) ([]Record, error) {
	var out []Record
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(fs)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "John", "john@example.com", "admin", nil); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.CreateUser(ctx, "Johnny", "john@example.com", "user", nil)
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(fs.users) != 1 {
		t.Fatalf("expected 1 user after duplicate attempt, got %d", len(fs.users))
	}
}

func TestCreateUserEmailCheckIsCaseSensitive(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(fs)
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, "John", "john@example.com", "admin", nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Exact-match check only; differing case passes the pre-check.
	if _, err := svc.CreateUser(ctx, "John", "JOHN@example.com", "admin", nil); err != nil {
		t.Fatalf("expected case-different email to pass the pre-check, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewService(&fakeStore{})
	_, err := svc.GetUser(context.Background(), "no-such-id")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateRecordStatusValidation(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(fs)
	ctx := context.Background()

	for _, status := range []string{"present", "absent", "late", "half-day"} {
		if _, err := svc.CreateRecord(ctx, Record{UserID: "u1", Date: "2024-03-01", Status: status}); err != nil {
			t.Errorf("status %q rejected: %v", status, err)
		}
	}

	_, err := svc.CreateRecord(ctx, Record{UserID: "u1", Date: "2024-03-01", Status: "vacation"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(fs.records) != 4 {
		t.Fatalf("invalid status must not persist, got %d records", len(fs.records))
	}
}

func TestRecordsByUserOrdering(t *testing.T) {
	fs := &fakeStore{}
	svc := NewService(fs)
	ctx := context.Background()

	for _, date := range []string{"2024-01-15", "2024-03-01", "2024-02-20"} {
		if _, err := svc.CreateRecord(ctx, Record{UserID: "u1", Date: date, Status: "present"}); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}
	_, _ = svc.CreateRecord(ctx, Record{UserID: "u2", Date: "2024-12-31", Status: "absent"})

	recs, err := svc.RecordsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("RecordsByUser: %v", err)
	}
	want := []string{"2024-03-01", "2024-02-20", "2024-01-15"}
	if len(recs) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(recs))
	}
	for i, rec := range recs {
		if rec.Date != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], rec.Date)
		}
	}
}
