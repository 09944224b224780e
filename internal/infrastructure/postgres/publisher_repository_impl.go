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

type PublisherRepository struct {
	pool *pgxpool.Pool
}

func NewPublisherRepository(pool *pgxpool.Pool) *PublisherRepository {
	return &PublisherRepository{pool: pool}
}

func (r *PublisherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Publisher, error) {
	p := &entity.Publisher{}
	row := engine(ctx, r.pool).QueryRow(ctx, `
		SELECT id, name, website, created_at, updated_at
		FROM publishers
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Website, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PublisherRepository) Save(ctx context.Context, p *entity.Publisher) (*entity.Publisher, error) {
	row := engine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO publishers (id, name, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, website = EXCLUDED.website, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Website, p.CreatedAt, p.UpdatedAt)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.PublisherRepository = (*PublisherRepository)(nil)
