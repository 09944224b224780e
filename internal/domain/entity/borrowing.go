package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// LoanPeriodDays is the fixed borrowing period.
	LoanPeriodDays = 14
	// RenewalDays is how far a renewal pushes the due date out.
	RenewalDays = 7
	// DefaultDailyFineRate is the fine charged per day overdue.
	DefaultDailyFineRate = 1.0
)

// BorrowingStatus is the observable state of a loan. "overdue" is
// time-triggered and recomputed on every query, never stored.
type BorrowingStatus string

const (
	StatusBorrowed BorrowingStatus = "borrowed"
	StatusOverdue  BorrowingStatus = "overdue"
	StatusReturned BorrowingStatus = "returned"
)

// Borrowing is a single loan of a book to a member.
//
// DueDate is canonical: it starts at BorrowingDate+14d and each renewal
// extends it by 7 days. (The system this replaces back-dated BorrowingDate on
// renewal instead, which retroactively rewrote duration and overdue history;
// extending the due date keeps those derived values stable.)
type Borrowing struct {
	ID            uuid.UUID
	BookID        uuid.UUID
	MemberID      uuid.UUID
	BorrowingDate time.Time
	DueDate       time.Time
	ReturningDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBorrowing(bookID, memberID uuid.UUID, borrowingDate time.Time) (*Borrowing, error) {
	b := &Borrowing{
		ID:            uuid.New(),
		BookID:        bookID,
		MemberID:      memberID,
		BorrowingDate: dateOnly(borrowingDate),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	b.DueDate = b.BorrowingDate.AddDate(0, 0, LoanPeriodDays)
	if err := b.validateDates(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Borrowing) validateDates() error {
	if b.BorrowingDate.IsZero() {
		return ValidationError{Field: "borrowing_date", Message: "borrowing date cannot be empty"}
	}
	if err := notInFuture("borrowing_date", "borrowing date", b.BorrowingDate); err != nil {
		return err
	}
	if b.ReturningDate != nil {
		if dateOnly(*b.ReturningDate).Before(dateOnly(b.BorrowingDate)) {
			return ValidationError{Field: "returning_date", Message: "returning date cannot be before borrowing date"}
		}
		if err := notInFuture("returning_date", "returning date", *b.ReturningDate); err != nil {
			return err
		}
	}
	return nil
}

func (b *Borrowing) IsReturned() bool { return b.ReturningDate != nil }

// IsOverdue reports whether the loan is past due and not returned. Returned
// loans are never overdue, regardless of when they came back.
func (b *Borrowing) IsOverdue() bool {
	if b.IsReturned() {
		return false
	}
	return today().After(dateOnly(b.DueDate))
}

func (b *Borrowing) DaysOverdue() int {
	if !b.IsOverdue() {
		return 0
	}
	return daysBetween(b.DueDate, today())
}

// DurationDays is the total loan duration so far, or until return.
func (b *Borrowing) DurationDays() int {
	end := today()
	if b.ReturningDate != nil {
		end = *b.ReturningDate
	}
	return daysBetween(b.BorrowingDate, end)
}

// RemainingDays is the number of days left before the loan is due, zero once
// due or returned.
func (b *Borrowing) RemainingDays() int {
	if b.IsReturned() {
		return 0
	}
	remaining := daysBetween(today(), b.DueDate)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Fine is the accumulated fine at the given daily rate.
func (b *Borrowing) Fine(dailyRate float64) float64 {
	return float64(b.DaysOverdue()) * dailyRate
}

// FineAmount is the fine at the default daily rate.
func (b *Borrowing) FineAmount() float64 { return b.Fine(DefaultDailyFineRate) }

func (b *Borrowing) Status() BorrowingStatus {
	switch {
	case b.IsReturned():
		return StatusReturned
	case b.IsOverdue():
		return StatusOverdue
	default:
		return StatusBorrowed
	}
}

// Return marks the loan returned. Returning an already-returned loan is a
// StateError; a bad return date is a ValidationError and leaves the loan
// unchanged.
func (b *Borrowing) Return(returnedOn time.Time) error {
	if b.IsReturned() {
		return StateError{Message: "book is already returned"}
	}
	d := dateOnly(returnedOn)
	if d.Before(dateOnly(b.BorrowingDate)) {
		return ValidationError{Field: "returning_date", Message: "returning date cannot be before borrowing date"}
	}
	if err := notInFuture("returning_date", "returning date", d); err != nil {
		return err
	}
	b.ReturningDate = &d
	b.UpdatedAt = time.Now()
	return nil
}

// CanBeRenewed reports whether the loan is renewable: not returned, not
// overdue, and within the first week.
func (b *Borrowing) CanBeRenewed() bool {
	if b.IsReturned() || b.IsOverdue() {
		return false
	}
	return b.DurationDays() <= RenewalDays
}

// Renew extends the due date by the renewal period. Renewing a non-renewable
// loan is a StateError.
func (b *Borrowing) Renew() error {
	if !b.CanBeRenewed() {
		return StateError{Message: "borrowing cannot be renewed"}
	}
	b.DueDate = b.DueDate.AddDate(0, 0, RenewalDays)
	b.UpdatedAt = time.Now()
	return nil
}

// IsLongTerm reports whether the loan has run for more than 30 days.
func (b *Borrowing) IsLongTerm() bool { return b.DurationDays() > 30 }

// IsShortTerm reports whether the loan ran for a week or less.
func (b *Borrowing) IsShortTerm() bool { return b.DurationDays() <= 7 }
