package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
	repo "github.com/oksasatya/go-library-management/internal/domain/repository"
)

// Loan event types published to the notification queue.
const (
	LoanEventBorrowed = "loan.borrowed"
	LoanEventReturned = "loan.returned"
	LoanEventRenewed  = "loan.renewed"
)

// LoanEvent is the JSON payload put on the queue for the loan worker.
type LoanEvent struct {
	Type        string    `json:"type"`
	BorrowingID uuid.UUID `json:"borrowing_id"`
	MemberID    uuid.UUID `json:"member_id"`
	BookID      uuid.UUID `json:"book_id"`
	BookTitle   string    `json:"book_title,omitempty"`
	DueDate     time.Time `json:"due_date"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher is the slice of the queue publisher the service needs.
// Satisfied by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// BorrowingService implements the borrowing workflow: borrow, return, renew.
// All business-rule checks and writes for one operation run inside a single
// unit of work, so the check-then-act sequences cannot race with concurrent
// requests on the same book or member.
type BorrowingService struct {
	Members    repo.MemberRepository
	Books      repo.BookRepository
	Borrowings repo.BorrowingRepository
	UoW        repo.UnitOfWork
	Events     EventPublisher
	Logger     *logrus.Logger
}

func NewBorrowingService(
	members repo.MemberRepository,
	books repo.BookRepository,
	borrowings repo.BorrowingRepository,
	uow repo.UnitOfWork,
	events EventPublisher,
	logger *logrus.Logger,
) *BorrowingService {
	return &BorrowingService{
		Members:    members,
		Books:      books,
		Borrowings: borrowings,
		UoW:        uow,
		Events:     events,
		Logger:     logger,
	}
}

type BorrowBookInput struct {
	MemberID      uuid.UUID
	BookID        uuid.UUID
	BorrowingDate *time.Time // defaults to today
}

// BorrowBook resolves member and book, enforces the borrowing rules in order
// (capacity, duplicate loan, availability), and persists the borrowing plus
// the member's updated loan list atomically.
func (s *BorrowingService) BorrowBook(ctx context.Context, in BorrowBookInput) (*BorrowingView, error) {
	var (
		saved *entity.Borrowing
		book  *entity.Book
	)
	err := s.UoW.WithinTx(ctx, func(txCtx context.Context) error {
		member, err := s.Members.FindByID(txCtx, in.MemberID)
		if err != nil {
			return err
		}
		if member == nil {
			return entity.NotFoundError{Entity: "member", ID: in.MemberID.String()}
		}
		if book, err = s.Books.FindByID(txCtx, in.BookID); err != nil {
			return err
		}
		if book == nil {
			return entity.NotFoundError{Entity: "book", ID: in.BookID.String()}
		}

		if !member.CanBorrowMore(entity.MaxActiveBorrowings) {
			return entity.CapacityError{
				Message: fmt.Sprintf("member %s has reached the maximum number of borrowings", member.FullName()),
			}
		}

		// One physical copy per book: an active loan by this member is a
		// duplicate, an active loan by anyone else makes the book unavailable.
		active, err := s.Borrowings.FindActiveForBook(txCtx, book.ID)
		if err != nil {
			return err
		}
		for _, b := range active {
			if b.MemberID == member.ID {
				return entity.DuplicateError{Entity: "borrowing", Field: "book", Value: book.Title}
			}
		}
		if len(active) > 0 {
			return entity.UnavailableError{Entity: "book", Reason: "already borrowed"}
		}

		borrowingDate := time.Now()
		if in.BorrowingDate != nil {
			borrowingDate = *in.BorrowingDate
		}
		borrowing, err := entity.NewBorrowing(book.ID, member.ID, borrowingDate)
		if err != nil {
			return err
		}

		if saved, err = s.Borrowings.Save(txCtx, borrowing); err != nil {
			return err
		}
		member.AddBorrowing(saved.ID)
		_, err = s.Members.Save(txCtx, member)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, LoanEvent{
		Type:        LoanEventBorrowed,
		BorrowingID: saved.ID,
		MemberID:    saved.MemberID,
		BookID:      saved.BookID,
		BookTitle:   book.Title,
		DueDate:     saved.DueDate,
		OccurredAt:  time.Now().UTC(),
	})
	return NewBorrowingView(saved), nil
}

// ReturnBook marks the loan returned and removes it from the member's active
// list; both writes share one unit of work.
func (s *BorrowingService) ReturnBook(ctx context.Context, borrowingID uuid.UUID, returnDate *time.Time) (*BorrowingView, error) {
	var saved *entity.Borrowing
	err := s.UoW.WithinTx(ctx, func(txCtx context.Context) error {
		borrowing, err := s.Borrowings.FindByID(txCtx, borrowingID)
		if err != nil {
			return err
		}
		if borrowing == nil {
			return entity.NotFoundError{Entity: "borrowing", ID: borrowingID.String()}
		}

		returnedOn := time.Now()
		if returnDate != nil {
			returnedOn = *returnDate
		}
		if err := borrowing.Return(returnedOn); err != nil {
			return err
		}
		if saved, err = s.Borrowings.Save(txCtx, borrowing); err != nil {
			return err
		}

		member, err := s.Members.FindByID(txCtx, borrowing.MemberID)
		if err != nil {
			return err
		}
		if member != nil {
			member.RemoveBorrowing(borrowing.ID)
			if _, err := s.Members.Save(txCtx, member); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, LoanEvent{
		Type:        LoanEventReturned,
		BorrowingID: saved.ID,
		MemberID:    saved.MemberID,
		BookID:      saved.BookID,
		DueDate:     saved.DueDate,
		OccurredAt:  time.Now().UTC(),
	})
	return NewBorrowingView(saved), nil
}

// RenewBorrowing extends the loan's due date if the renewal window allows it.
func (s *BorrowingService) RenewBorrowing(ctx context.Context, borrowingID uuid.UUID) (*BorrowingView, error) {
	var saved *entity.Borrowing
	err := s.UoW.WithinTx(ctx, func(txCtx context.Context) error {
		borrowing, err := s.Borrowings.FindByID(txCtx, borrowingID)
		if err != nil {
			return err
		}
		if borrowing == nil {
			return entity.NotFoundError{Entity: "borrowing", ID: borrowingID.String()}
		}
		if err := borrowing.Renew(); err != nil {
			return err
		}
		saved, err = s.Borrowings.Save(txCtx, borrowing)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, LoanEvent{
		Type:        LoanEventRenewed,
		BorrowingID: saved.ID,
		MemberID:    saved.MemberID,
		BookID:      saved.BookID,
		DueDate:     saved.DueDate,
		OccurredAt:  time.Now().UTC(),
	})
	return NewBorrowingView(saved), nil
}

// GetBorrowing returns the loan's derived view, or (nil, nil) when absent.
func (s *BorrowingService) GetBorrowing(ctx context.Context, borrowingID uuid.UUID) (*BorrowingView, error) {
	borrowing, err := s.Borrowings.FindByID(ctx, borrowingID)
	if err != nil || borrowing == nil {
		return nil, err
	}
	return NewBorrowingView(borrowing), nil
}

// publish sends a loan event to the notification queue, best effort: a dead
// broker must not fail the borrowing operation.
func (s *BorrowingService) publish(ctx context.Context, ev LoanEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event", ev.Type).Warn("loan event publish failed")
	}
}
