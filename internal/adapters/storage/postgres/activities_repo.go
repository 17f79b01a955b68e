package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pettabl/internal/domain/activities"
	"pettabl/internal/domain/schedules"
	"pettabl/internal/platform/dateutil"
)

type ActivitiesRepo struct {
	db *sql.DB
}

func NewActivitiesRepo(db *sql.DB) *ActivitiesRepo {
	return &ActivitiesRepo{db: db}
}

func (r *ActivitiesRepo) Create(ctx context.Context, a activities.Activity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO care_activities (
			id, session_id, pet_id,
			activity_type, time_period, activity_date,
			caretaker_id, photo_url, notes,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.SessionID,
		a.PetID,
		string(a.Activity),
		string(a.Period),
		dateutil.DateKey(a.Date),
		a.CaretakerID,
		a.PhotoURL,
		a.Notes,
		a.CreatedAt,
	)
	return err
}

func (r *ActivitiesRepo) GetByID(ctx context.Context, id string) (activities.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return activities.Activity{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, session_id, pet_id,
			activity_type, time_period, activity_date,
			caretaker_id, photo_url, notes,
			created_at
		FROM care_activities
		WHERE id = $1
	`, id)

	a, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return activities.Activity{}, ErrNotFound
	}
	return a, err
}

func (r *ActivitiesRepo) ListBySession(ctx context.Context, sessionID string, filter activities.ListFilter) ([]activities.Activity, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, nil
	}

	// el filtro por fecha va como clave YYYY-MM-DD para que la comparación
	// sea de día calendario, sin importar la zona horaria del proceso
	q := `
		SELECT
			id, session_id, pet_id,
			activity_type, time_period, activity_date,
			caretaker_id, photo_url, notes,
			created_at
		FROM care_activities
		WHERE session_id = $1
	`
	args := []any{sessionID}
	if filter.Date != nil {
		q += ` AND activity_date = $2::date`
		args = append(args, dateutil.DateKey(*filter.Date))
	}
	q += ` ORDER BY activity_date ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]activities.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *ActivitiesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM care_activities WHERE id = $1
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

func scanActivity(row rowScanner) (activities.Activity, error) {
	var a activities.Activity
	var act, per string
	if err := row.Scan(
		&a.ID,
		&a.SessionID,
		&a.PetID,
		&act,
		&per,
		&a.Date,
		&a.CaretakerID,
		&a.PhotoURL,
		&a.Notes,
		&a.CreatedAt,
	); err != nil {
		return activities.Activity{}, err
	}
	a.Activity = schedules.ActivityType(act)
	a.Period = schedules.TimePeriod(per)
	return a, nil
}
