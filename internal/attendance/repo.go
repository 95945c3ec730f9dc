package attendance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// User represents a registered user.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Department *string
}

// Record represents a single attendance entry for a user on a date.
// Date is stored as an opaque "YYYY-MM-DD" string; CheckIn and CheckOut
// are opaque ISO timestamps, never parsed.
type Record struct {
	ID       string
	UserID   string
	Date     string
	Status   string
	CheckIn  *string
	CheckOut *string
	Notes    *string
}

// Repository persists attendance data in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user with a freshly generated id and returns it.
// Email uniqueness is not checked here; callers pre-check, and the UNIQUE
// constraint is the last line of defense.
func (r *Repository) CreateUser(ctx context.Context, name, email, role string, department *string) (User, error) {
	u := User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Role:       role,
		Department: department,
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, role, department)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Name, u.Email, u.Role, u.Department)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// ListUsers returns all users in storage-default order.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role, department FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

// GetUser returns the user with the given id, or nil if none exists.
func (r *Repository) GetUser(ctx context.Context, id string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, role, department FROM users WHERE id = $1
	`, id)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns the first user with an exact email match, or nil.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, role, department FROM users WHERE email = $1
	`, email)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// SearchUsers returns users whose name or email contains q as a
// case-insensitive substring.
func (r *Repository) SearchUsers(ctx context.Context, q string) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, role, department
		FROM users
		WHERE name ILIKE $1 OR email ILIKE $1
	`, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

// CreateRecord inserts a new attendance record with a freshly generated id
// and returns it. Status is not validated here.
func (r *Repository) CreateRecord(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance_records (id, user_id, date, status, check_in, check_out, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.UserID, rec.Date, rec.Status, rec.CheckIn, rec.CheckOut, rec.Notes)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// ListRecordsByUser returns all records for a user, ordered by the literal
// date string descending. The column is TEXT, so the order is lexicographic,
// not calendar-aware.
func (r *Repository) ListRecordsByUser(ctx context.Context, userID string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, status, check_in, check_out, notes
		FROM attendance_records
		WHERE user_id = $1
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ListRecordsByDate returns all records with an exact string match on date.
func (r *Repository) ListRecordsByDate(ctx context.Context, date string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, status, check_in, check_out, notes
		FROM attendance_records
		WHERE date = $1
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanUsers(rows *sql.Rows) ([]User, error) {
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var recs []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut, &rec.Notes); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
