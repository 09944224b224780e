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

const bookColumns = `id, title, description, published_date, isbn, author_id, publisher_id, genre_id, cover_url, created_at, updated_at`

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func scanBook(row pgx.Row) (*entity.Book, error) {
	b := &entity.Book{}
	err := row.Scan(&b.ID, &b.Title, &b.Description, &b.PublishedDate, &b.ISBN,
		&b.AuthorID, &b.PublisherID, &b.GenreID, &b.CoverURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	return scanBook(engine(ctx, r.pool).QueryRow(ctx, `
		SELECT `+bookColumns+` FROM books WHERE id = $1
	`, id))
}

func (r *BookRepository) FindByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	return scanBook(engine(ctx, r.pool).QueryRow(ctx, `
		SELECT `+bookColumns+` FROM books WHERE isbn = $1
	`, isbn))
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	rows, err := engine(ctx, r.pool).Query(ctx, `
		SELECT `+bookColumns+` FROM books ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*entity.Book
	for rows.Next() {
		b := &entity.Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.PublishedDate, &b.ISBN,
			&b.AuthorID, &b.PublisherID, &b.GenreID, &b.CoverURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookRepository) Save(ctx context.Context, b *entity.Book) (*entity.Book, error) {
	row := engine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO books (id, title, description, published_date, isbn, author_id, publisher_id, genre_id, cover_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, description = EXCLUDED.description,
		    published_date = EXCLUDED.published_date, isbn = EXCLUDED.isbn,
		    author_id = EXCLUDED.author_id, publisher_id = EXCLUDED.publisher_id,
		    genre_id = EXCLUDED.genre_id, cover_url = EXCLUDED.cover_url,
		    updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`, b.ID, b.Title, b.Description, b.PublishedDate, b.ISBN, b.AuthorID, b.PublisherID, b.GenreID, b.CoverURL, b.CreatedAt, b.UpdatedAt)
	if err := row.Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

var _ repository.BookRepository = (*BookRepository)(nil)
