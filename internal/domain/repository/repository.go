// Package repository defines the narrow persistence contracts the use cases
// depend on. Concrete adapters live in internal/infrastructure.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
)

// All finders return (nil, nil) when the entity does not exist; Save is an
// upsert returning the canonical persisted form.

type AuthorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	Save(ctx context.Context, a *entity.Author) (*entity.Author, error)
}

type PublisherRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Publisher, error)
	Save(ctx context.Context, p *entity.Publisher) (*entity.Publisher, error)
}

type GenreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	Save(ctx context.Context, g *entity.Genre) (*entity.Genre, error)
	// AddBookToGenre records the book/genre association.
	AddBookToGenre(ctx context.Context, genreID, bookID uuid.UUID) error
}

type BookRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	// FindByISBN looks a book up by its natural key.
	FindByISBN(ctx context.Context, isbn string) (*entity.Book, error)
	FindAll(ctx context.Context) ([]*entity.Book, error)
	Save(ctx context.Context, b *entity.Book) (*entity.Book, error)
}

type MemberRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	Save(ctx context.Context, m *entity.Member) (*entity.Member, error)
}

type BorrowingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Borrowing, error)
	Save(ctx context.Context, b *entity.Borrowing) (*entity.Borrowing, error)
	// FindActiveForMember returns the member's loans with no returning date.
	FindActiveForMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Borrowing, error)
	// FindActiveForBook returns the book's loans with no returning date.
	FindActiveForBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Borrowing, error)
	FindAllForMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Borrowing, error)
	CountForMember(ctx context.Context, memberID uuid.UUID) (int, error)
}

// UnitOfWork runs fn inside one transactional boundary: every repository call
// made with the ctx passed to fn joins the same transaction, and the whole
// group commits or rolls back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
