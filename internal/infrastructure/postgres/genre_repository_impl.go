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

type GenreRepository struct {
	pool *pgxpool.Pool
}

func NewGenreRepository(pool *pgxpool.Pool) *GenreRepository {
	return &GenreRepository{pool: pool}
}

func (r *GenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	g := &entity.Genre{}
	row := engine(ctx, r.pool).QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM genres
		WHERE id = $1
	`, id)
	if err := row.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	// Book associations live on the books table; load them in insertion order.
	rows, err := engine(ctx, r.pool).Query(ctx, `
		SELECT id FROM books WHERE genre_id = $1 ORDER BY created_at
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var bookID uuid.UUID
		if err := rows.Scan(&bookID); err != nil {
			return nil, err
		}
		g.BookIDs = append(g.BookIDs, bookID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *GenreRepository) Save(ctx context.Context, g *entity.Genre) (*entity.Genre, error) {
	row := engine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO genres (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`, g.ID, g.Name, g.CreatedAt, g.UpdatedAt)
	if err := row.Scan(&g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *GenreRepository) AddBookToGenre(ctx context.Context, genreID, bookID uuid.UUID) error {
	res, err := engine(ctx, r.pool).Exec(ctx, `
		UPDATE books SET genre_id = $1, updated_at = now() WHERE id = $2
	`, genreID, bookID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return entity.NotFoundError{Entity: "book", ID: bookID.String()}
	}
	return nil
}

var _ repository.GenreRepository = (*GenreRepository)(nil)
