package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"pettabl/internal/domain/schedules"
)

type SchedulesRepo struct {
	db *sql.DB
}

func NewSchedulesRepo(db *sql.DB) *SchedulesRepo {
	return &SchedulesRepo{db: db}
}

// Put reemplaza el horario completo en una transacción: upsert de la
// cabecera y reemplazo total de los slots.
func (r *SchedulesRepo) Put(ctx context.Context, sch schedules.Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO pet_schedules (id, pet_id, created_at, updated_at)
		VALUES (?,?,?,?)
		ON CONFLICT (pet_id) DO UPDATE SET updated_at = excluded.updated_at
	`,
		sch.ID,
		sch.PetID,
		encodeTime(sch.CreatedAt),
		encodeTime(sch.UpdatedAt),
	)
	if err != nil {
		return err
	}

	var schID string
	if err := tx.QueryRowContext(ctx, `
		SELECT id FROM pet_schedules WHERE pet_id = ?
	`, sch.PetID).Scan(&schID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM pet_schedule_slots WHERE schedule_id = ?
	`, schID); err != nil {
		return err
	}

	for i, sl := range sch.Slots {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pet_schedule_slots (
				schedule_id, activity_type, time_period, instructions, position
			) VALUES (?,?,?,?,?)
		`,
			schID,
			string(sl.Activity),
			string(sl.Period),
			sl.Instructions,
			i,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SchedulesRepo) GetByPet(ctx context.Context, petID string) (schedules.Schedule, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return schedules.Schedule{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, created_at, updated_at
		FROM pet_schedules
		WHERE pet_id = ?
	`, petID)

	var sch schedules.Schedule
	var created, updated string
	if err := row.Scan(&sch.ID, &sch.PetID, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return schedules.Schedule{}, ErrNotFound
		}
		return schedules.Schedule{}, err
	}

	var err error
	if sch.CreatedAt, err = decodeTime(created); err != nil {
		return schedules.Schedule{}, err
	}
	if sch.UpdatedAt, err = decodeTime(updated); err != nil {
		return schedules.Schedule{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT activity_type, time_period, instructions
		FROM pet_schedule_slots
		WHERE schedule_id = ?
		ORDER BY position ASC
	`, sch.ID)
	if err != nil {
		return schedules.Schedule{}, err
	}
	defer rows.Close()

	sch.Slots = make([]schedules.Slot, 0)
	for rows.Next() {
		var sl schedules.Slot
		var act, per string
		if err := rows.Scan(&act, &per, &sl.Instructions); err != nil {
			return schedules.Schedule{}, err
		}
		sl.Activity = schedules.ActivityType(act)
		sl.Period = schedules.TimePeriod(per)
		sch.Slots = append(sch.Slots, sl)
	}

	return sch, rows.Err()
}

func (r *SchedulesRepo) DeleteByPet(ctx context.Context, petID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pet_schedules WHERE pet_id = ?
	`, petID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
