package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
	repo "github.com/oksasatya/go-library-management/internal/domain/repository"
)

// MemberService answers read queries about a member's borrowing history.
type MemberService struct {
	Members    repo.MemberRepository
	Borrowings repo.BorrowingRepository
	Books      repo.BookRepository
	Logger     *logrus.Logger
}

func NewMemberService(members repo.MemberRepository, borrowings repo.BorrowingRepository, books repo.BookRepository, logger *logrus.Logger) *MemberService {
	return &MemberService{Members: members, Borrowings: borrowings, Books: books, Logger: logger}
}

// GetBorrowingStats summarizes a member's total, active and returned loans.
func (s *MemberService) GetBorrowingStats(ctx context.Context, memberID uuid.UUID) (*MemberStatsView, error) {
	if err := s.ensureMember(ctx, memberID); err != nil {
		return nil, err
	}
	total, err := s.Borrowings.CountForMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	active, err := s.Borrowings.FindActiveForMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &MemberStatsView{
		MemberID:           memberID,
		TotalBorrowings:    total,
		ActiveBorrowings:   len(active),
		ReturnedBorrowings: total - len(active),
	}, nil
}

// GetBorrowedBooks lists every loan the member ever made, with book titles.
func (s *MemberService) GetBorrowedBooks(ctx context.Context, memberID uuid.UUID) ([]BorrowedBookView, error) {
	if err := s.ensureMember(ctx, memberID); err != nil {
		return nil, err
	}
	borrowings, err := s.Borrowings.FindAllForMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]BorrowedBookView, 0, len(borrowings))
	for _, b := range borrowings {
		out = append(out, BorrowedBookView{
			BookID:        b.BookID,
			BookTitle:     s.bookTitle(ctx, b.BookID),
			BorrowingDate: b.BorrowingDate,
			ReturningDate: b.ReturningDate,
			IsActive:      !b.IsReturned(),
		})
	}
	return out, nil
}

// GetActiveBooks lists the member's currently held books.
func (s *MemberService) GetActiveBooks(ctx context.Context, memberID uuid.UUID) ([]ActiveBookView, error) {
	if err := s.ensureMember(ctx, memberID); err != nil {
		return nil, err
	}
	active, err := s.Borrowings.FindActiveForMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := make([]ActiveBookView, 0, len(active))
	for _, b := range active {
		out = append(out, ActiveBookView{
			BookID:        b.BookID,
			BookTitle:     s.bookTitle(ctx, b.BookID),
			BorrowingDate: b.BorrowingDate,
			DaysBorrowed:  b.DurationDays(),
		})
	}
	return out, nil
}

func (s *MemberService) ensureMember(ctx context.Context, memberID uuid.UUID) error {
	member, err := s.Members.FindByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return entity.NotFoundError{Entity: "member", ID: memberID.String()}
	}
	return nil
}

func (s *MemberService) bookTitle(ctx context.Context, bookID uuid.UUID) string {
	book, err := s.Books.FindByID(ctx, bookID)
	if err != nil || book == nil {
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("book_id", bookID).Warn("book lookup failed")
		}
		return ""
	}
	return book.Title
}
