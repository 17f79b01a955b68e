package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"pettabl/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id,
			name, species, breed,
			photo_url, notes,
			created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Species,
		p.Breed,
		p.PhotoURL,
		p.Notes,
		encodeTime(p.CreatedAt),
		encodeTime(p.UpdatedAt),
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = ?,
			species = ?,
			breed = ?,
			photo_url = ?,
			notes = ?,
			updated_at = ?
		WHERE id = ?
	`,
		p.Name,
		p.Species,
		p.Breed,
		p.PhotoURL,
		p.Notes,
		encodeTime(p.UpdatedAt),
		p.ID,
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

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, species, breed,
			photo_url, notes,
			created_at, updated_at
		FROM pets
		WHERE id = ?
	`, id)

	p, err := scanPet(row)
	if err == sql.ErrNoRows {
		return pets.Pet{}, ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, species, breed,
			photo_url, notes,
			created_at, updated_at
		FROM pets
		WHERE owner_user_id = ?
		ORDER BY created_at ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var created, updated string
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.PhotoURL,
		&p.Notes,
		&created,
		&updated,
	); err != nil {
		return pets.Pet{}, err
	}

	var err error
	if p.CreatedAt, err = decodeTime(created); err != nil {
		return pets.Pet{}, err
	}
	if p.UpdatedAt, err = decodeTime(updated); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}
