package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pettabl/internal/domain/sessions"
)

type SessionsRepo struct {
	db *sql.DB
}

func NewSessionsRepo(db *sql.DB) *SessionsRepo {
	return &SessionsRepo{db: db}
}

func (r *SessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_sessions (
			id, pet_id, owner_user_id,
			start_date, end_date,
			status, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		s.ID,
		s.PetID,
		s.OwnerUserID,
		s.StartDate,
		s.EndDate,
		string(s.Status),
		s.Notes,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SessionsRepo) Update(ctx context.Context, s sessions.Session) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE care_sessions
		SET
			start_date = $2,
			end_date = $3,
			status = $4,
			notes = $5,
			updated_at = $6
		WHERE id = $1
	`,
		s.ID,
		s.StartDate,
		s.EndDate,
		string(s.Status),
		s.Notes,
		s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SessionsRepo) GetByID(ctx context.Context, id string) (sessions.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return sessions.Session{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, pet_id, owner_user_id,
			start_date, end_date,
			status, notes,
			created_at, updated_at
		FROM care_sessions
		WHERE id = $1
	`, id)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return sessions.Session{}, ErrNotFound
	}
	return s, err
}

func (r *SessionsRepo) ListByPet(ctx context.Context, petID string) ([]sessions.Session, error) {
	return r.list(ctx, `WHERE pet_id = $1`, petID)
}

func (r *SessionsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]sessions.Session, error) {
	return r.list(ctx, `WHERE owner_user_id = $1`, ownerUserID)
}

func (r *SessionsRepo) list(ctx context.Context, where, arg string) ([]sessions.Session, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id, owner_user_id,
			start_date, end_date,
			status, notes,
			created_at, updated_at
		FROM care_sessions
		`+where+`
		ORDER BY start_date ASC, created_at ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sessions.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

func (r *SessionsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM care_sessions WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// ojo: start_date/end_date son DATE, pgx los mapea a time.Time midnight
// UTC; la comparación por día la hace dateutil vía claves YYYY-MM-DD.
func scanSession(row rowScanner) (sessions.Session, error) {
	var s sessions.Session
	var status string
	if err := row.Scan(
		&s.ID,
		&s.PetID,
		&s.OwnerUserID,
		&s.StartDate,
		&s.EndDate,
		&status,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return sessions.Session{}, err
	}
	s.Status = sessions.Status(status)
	return s, nil
}
