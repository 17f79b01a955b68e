package sqlite

import (
	"context"
	"database/sql"
	"strings"

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
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		a.ID,
		a.SessionID,
		a.PetID,
		a.OwnerUserID,
		a.AgentUserID,
		string(a.Status),
		encodeTime(a.CreatedAt),
		encodeTime(a.UpdatedAt),
		encodeNullTime(a.RevokedAt),
	)
	return err
}

func (r *AgentsRepo) Update(ctx context.Context, a agents.Assignment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE session_agents
		SET
			status = ?,
			updated_at = ?,
			revoked_at = ?
		WHERE id = ?
	`,
		string(a.Status),
		encodeTime(a.UpdatedAt),
		encodeNullTime(a.RevokedAt),
		a.ID,
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
		WHERE id = ?
	`, id)

	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return agents.Assignment{}, ErrNotFound
	}
	return a, err
}

func (r *AgentsRepo) ListBySession(ctx context.Context, sessionID string) ([]agents.Assignment, error) {
	return r.list(ctx, `WHERE session_id = ?`, sessionID)
}

func (r *AgentsRepo) ListByAgent(ctx context.Context, agentUserID string) ([]agents.Assignment, error) {
	return r.list(ctx, `WHERE agent_user_id = ?`, agentUserID)
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
		WHERE session_id = ? AND agent_user_id = ? AND status = ?
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
	var status, created, updated string
	var revoked sql.NullString
	if err := row.Scan(
		&a.ID,
		&a.SessionID,
		&a.PetID,
		&a.OwnerUserID,
		&a.AgentUserID,
		&status,
		&created,
		&updated,
		&revoked,
	); err != nil {
		return agents.Assignment{}, err
	}

	var err error
	if a.CreatedAt, err = decodeTime(created); err != nil {
		return agents.Assignment{}, err
	}
	if a.UpdatedAt, err = decodeTime(updated); err != nil {
		return agents.Assignment{}, err
	}
	if revoked.Valid {
		t, err := decodeTime(revoked.String)
		if err != nil {
			return agents.Assignment{}, err
		}
		a.RevokedAt = &t
	}
	a.Status = agents.Status(status)
	return a, nil
}
