package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"pettabl/internal/domain/sessions"
	"pettabl/internal/platform/dateutil"
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
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		s.ID,
		s.PetID,
		s.OwnerUserID,
		dateutil.DateKey(s.StartDate),
		dateutil.DateKey(s.EndDate),
		string(s.Status),
		s.Notes,
		encodeTime(s.CreatedAt),
		encodeTime(s.UpdatedAt),
	)
	return err
}

func (r *SessionsRepo) Update(ctx context.Context, s sessions.Session) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE care_sessions
		SET
			start_date = ?,
			end_date = ?,
			status = ?,
			notes = ?,
			updated_at = ?
		WHERE id = ?
	`,
		dateutil.DateKey(s.StartDate),
		dateutil.DateKey(s.EndDate),
		string(s.Status),
		s.Notes,
		encodeTime(s.UpdatedAt),
		s.ID,
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
		WHERE id = ?
	`, id)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return sessions.Session{}, ErrNotFound
	}
	return s, err
}

func (r *SessionsRepo) ListByPet(ctx context.Context, petID string) ([]sessions.Session, error) {
	return r.list(ctx, `WHERE pet_id = ?`, petID)
}

func (r *SessionsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]sessions.Session, error) {
	return r.list(ctx, `WHERE owner_user_id = ?`, ownerUserID)
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
		DELETE FROM care_sessions WHERE id = ?
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

func scanSession(row rowScanner) (sessions.Session, error) {
	var s sessions.Session
	var start, end, status, created, updated string
	if err := row.Scan(
		&s.ID,
		&s.PetID,
		&s.OwnerUserID,
		&start,
		&end,
		&status,
		&s.Notes,
		&created,
		&updated,
	); err != nil {
		return sessions.Session{}, err
	}

	var err error
	if s.StartDate, err = dateutil.ParseKey(start); err != nil {
		return sessions.Session{}, err
	}
	if s.EndDate, err = dateutil.ParseKey(end); err != nil {
		return sessions.Session{}, err
	}
	if s.CreatedAt, err = decodeTime(created); err != nil {
		return sessions.Session{}, err
	}
	if s.UpdatedAt, err = decodeTime(updated); err != nil {
		return sessions.Session{}, err
	}
	s.Status = sessions.Status(status)
	return s, nil
}
