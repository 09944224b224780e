package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
	"github.com/oksasatya/go-library-management/internal/domain/repository"
)

type AuthorRepository struct {
	pool *pgxpool.Pool
}

func NewAuthorRepository(pool *pgxpool.Pool) *AuthorRepository {
	return &AuthorRepository{pool: pool}
}

func (r *AuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	a := &entity.Author{}
	row := engine(ctx, r.pool).QueryRow(ctx, `
		SELECT id, name, birth_date, death_date, created_at, updated_at
		FROM authors
		WHERE id = $1
	`, id)
	if err := row.Scan(&a.ID, &a.Name, &a.BirthDate, &a.DeathDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *AuthorRepository) Save(ctx context.Context, a *entity.Author) (*entity.Author, error) {
	row := engine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO authors (id, name, birth_date, death_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, birth_date = EXCLUDED.birth_date,
		    death_date = EXCLUDED.death_date, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`, a.ID, a.Name, a.BirthDate, a.DeathDate, a.CreatedAt, a.UpdatedAt)
	if err := row.Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

var _ repository.AuthorRepository = (*AuthorRepository)(nil)
