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

const borrowingColumns = `id, book_id, member_id, borrowing_date, due_date, returning_date, created_at, updated_at`

type BorrowingRepository struct {
	pool *pgxpool.Pool
}

func NewBorrowingRepository(pool *pgxpool.Pool) *BorrowingRepository {
	return &BorrowingRepository{pool: pool}
}

func (r *BorrowingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Borrowing, error) {
	b := &entity.Borrowing{}
	row := engine(ctx, r.pool).QueryRow(ctx, `
		SELECT `+borrowingColumns+` FROM borrowings WHERE id = $1
	`, id)
	if err := row.Scan(&b.ID, &b.BookID, &b.MemberID, &b.BorrowingDate, &b.DueDate,
		&b.ReturningDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *BorrowingRepository) Save(ctx context.Context, b *entity.Borrowing) (*entity.Borrowing, error) {
	row := engine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO borrowings (id, book_id, member_id, borrowing_date, due_date, returning_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET borrowing_date = EXCLUDED.borrowing_date, due_date = EXCLUDED.due_date,
		    returning_date = EXCLUDED.returning_date, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`, b.ID, b.BookID, b.MemberID, b.BorrowingDate, b.DueDate, b.ReturningDate, b.CreatedAt, b.UpdatedAt)
	if err := row.Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BorrowingRepository) FindActiveForMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Borrowing, error) {
	return r.findWhere(ctx, `member_id = $1 AND returning_date IS NULL`, memberID)
}

func (r *BorrowingRepository) FindActiveForBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Borrowing, error) {
	return r.findWhere(ctx, `book_id = $1 AND returning_date IS NULL`, bookID)
}

func (r *BorrowingRepository) FindAllForMember(ctx context.Context, memberID uuid.UUID) ([]*entity.Borrowing, error) {
	return r.findWhere(ctx, `member_id = $1`, memberID)
}

func (r *BorrowingRepository) CountForMember(ctx context.Context, memberID uuid.UUID) (int, error) {
	var count int
	row := engine(ctx, r.pool).QueryRow(ctx, `
		SELECT count(*) FROM borrowings WHERE member_id = $1
	`, memberID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BorrowingRepository) findWhere(ctx context.Context, where string, arg any) ([]*entity.Borrowing, error) {
	rows, err := engine(ctx, r.pool).Query(ctx, `
		SELECT `+borrowingColumns+` FROM borrowings WHERE `+where+` ORDER BY created_at
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var borrowings []*entity.Borrowing
	for rows.Next() {
		b := &entity.Borrowing{}
		if err := rows.Scan(&b.ID, &b.BookID, &b.MemberID, &b.BorrowingDate, &b.DueDate,
			&b.ReturningDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		borrowings = append(borrowings, b)
	}
	return borrowings, rows.Err()
}

var _ repository.BorrowingRepository = (*BorrowingRepository)(nil)
