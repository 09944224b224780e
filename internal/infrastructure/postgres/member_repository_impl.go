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

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// FindByID loads the member row with FOR UPDATE when inside a transaction,
// pinning the member for the borrow path's check-then-act sequence.
func (r *MemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	q := `
		SELECT id, first_name, last_name, birth_date, created_at, updated_at
		FROM members
		WHERE id = $1
	`
	if _, inTx := txFrom(ctx); inTx {
		q += ` FOR UPDATE`
	}

	m := &entity.Member{}
	row := engine(ctx, r.pool).QueryRow(ctx, q, id)
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.BirthDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	// The active-loan list is derived from the borrowings table.
	rows, err := engine(ctx, r.pool).Query(ctx, `
		SELECT id FROM borrowings
		WHERE member_id = $1 AND returning_date IS NULL
		ORDER BY created_at
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var borrowingID uuid.UUID
		if err := rows.Scan(&borrowingID); err != nil {
			return nil, err
		}
		m.BorrowingIDs = append(m.BorrowingIDs, borrowingID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *MemberRepository) Save(ctx context.Context, m *entity.Member) (*entity.Member, error) {
	row := engine(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO members (id, first_name, last_name, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
		    birth_date = EXCLUDED.birth_date, updated_at = EXCLUDED.updated_at
		RETURNING created_at, updated_at
	`, m.ID, m.FirstName, m.LastName, m.BirthDate, m.CreatedAt, m.UpdatedAt)
	if err := row.Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return m, nil
}

var _ repository.MemberRepository = (*MemberRepository)(nil)
