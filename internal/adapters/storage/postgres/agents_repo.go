package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pettabl/internal/domain/agents"
)

type AgentsRepo struct {
	db *sql.DB
}

func NewAgentsRepo(db *sql.DB) *AgentsRepo {
	return &AgentsRepo{db: db}
}

func (r *AgentsRepo) Create(ctx context.Context, a agents.Assignment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_agents (
			id, session_id, pet_id,
			owner_user_id, agent_user_id,
			status,
			created_at, updated_at, revoked_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.SessionID,
		a.PetID,
		a.OwnerUserID,
		a.AgentUserID,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
		toNullTime(a.RevokedAt),
	)
	return err
}

func (r *AgentsRepo) Update(ctx context.Context, a agents.Assignment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE session_agents
		SET
			status = $2,
			updated_at = $3,
			revoked_at = $4
		WHERE id = $1
	`,
		a.ID,
		string(a.Status),
		a.UpdatedAt,
		toNullTime(a.RevokedAt),
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

func (r *AgentsRepo) GetByID(ctx context.Context, id string) (agents.Assignment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return agents.Assignment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, session_id, pet_id,
			owner_user_id, agent_user_id,
			status,
			created_at, updated_at, revoked_at
		FROM session_agents
		WHERE id = $1
	`, id)

	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return agents.Assignment{}, ErrNotFound
	}
	return a, err
}

func (r *AgentsRepo) ListBySession(ctx context.Context, sessionID string) ([]agents.Assignment, error) {
	return r.list(ctx, `WHERE session_id = $1`, sessionID)
}

func (r *AgentsRepo) ListByAgent(ctx context.Context, agentUserID string) ([]agents.Assignment, error) {
	return r.list(ctx, `WHERE agent_user_id = $1`, agentUserID)
}

func (r *AgentsRepo) list(ctx context.Context, where, arg string) ([]agents.Assignment, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, session_id, pet_id,
			owner_user_id, agent_user_id,
			status,
			created_at, updated_at, revoked_at
		FROM session_agents
		`+where+`
		ORDER BY created_at ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]agents.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AgentsRepo) GetActive(ctx context.Context, sessionID, agentUserID string) (agents.Assignment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, session_id, pet_id,
			owner_user_id, agent_user_id,
			status,
			created_at, updated_at, revoked_at
		FROM session_agents
		WHERE session_id = $1 AND agent_user_id = $2 AND status = $3
		ORDER BY updated_at DESC
		LIMIT 1
	`, sessionID, agentUserID, string(agents.StatusActive))

	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return agents.Assignment{}, ErrNotFound
	}
	return a, err
}

func scanAssignment(row rowScanner) (agents.Assignment, error) {
	var a agents.Assignment
	var status string
	var revoked sql.NullTime
	if err := row.Scan(
		&a.ID,
		&a.SessionID,
		&a.PetID,
		&a.OwnerUserID,
		&a.AgentUserID,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&revoked,
	); err != nil {
		return agents.Assignment{}, err
	}
	a.Status = agents.Status(status)
	if revoked.Valid {
		t := revoked.Time
		a.RevokedAt = &t
	}
	return a, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
