package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func TestNewBorrowingSetsDueDate(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, b.BorrowingDate.AddDate(0, 0, LoanPeriodDays), b.DueDate)
	assert.Equal(t, StatusBorrowed, b.Status())
	assert.False(t, b.IsOverdue())
	assert.False(t, b.IsReturned())
	assert.Equal(t, 0, b.DaysOverdue())
	assert.Equal(t, 0.0, b.FineAmount())
	assert.Equal(t, LoanPeriodDays, b.RemainingDays())
}

func TestNewBorrowingRejectsFutureDate(t *testing.T) {
	_, err := NewBorrowing(uuid.New(), uuid.New(), time.Now().AddDate(0, 0, 1))
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "borrowing_date", verr.Field)
}

func TestOverdueLoanAccruesFine(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(20))
	require.NoError(t, err)

	assert.True(t, b.IsOverdue())
	assert.Equal(t, StatusOverdue, b.Status())
	assert.Equal(t, 6, b.DaysOverdue())
	assert.Equal(t, 6.0, b.Fine(DefaultDailyFineRate))
	assert.Equal(t, 6.0, b.FineAmount())
	assert.Equal(t, 3.0, b.Fine(0.5))
	assert.Equal(t, 0, b.RemainingDays())
	assert.Equal(t, 20, b.DurationDays())
}

func TestReturnEndsLoan(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(3))
	require.NoError(t, err)

	require.NoError(t, b.Return(time.Now()))
	assert.True(t, b.IsReturned())
	assert.Equal(t, StatusReturned, b.Status())
	assert.Equal(t, 3, b.DurationDays())
	assert.Equal(t, 0, b.RemainingDays())
}

func TestReturnTwiceIsStateError(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(3))
	require.NoError(t, err)
	require.NoError(t, b.Return(time.Now()))

	err = b.Return(time.Now())
	var serr StateError
	require.ErrorAs(t, err, &serr)
}

func TestReturnDateValidation(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(3))
	require.NoError(t, err)

	var verr ValidationError
	require.ErrorAs(t, b.Return(daysAgo(5)), &verr)
	assert.False(t, b.IsReturned())

	require.ErrorAs(t, b.Return(time.Now().AddDate(0, 0, 1)), &verr)
	assert.False(t, b.IsReturned())
}

func TestReturnedLoanIsNeverOverdue(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(20))
	require.NoError(t, err)
	require.True(t, b.IsOverdue())

	require.NoError(t, b.Return(time.Now()))
	assert.False(t, b.IsOverdue())
	assert.Equal(t, 0, b.DaysOverdue())
	assert.Equal(t, 0.0, b.FineAmount())
	assert.Equal(t, StatusReturned, b.Status())
}

func TestRenewExtendsDueDate(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(3))
	require.NoError(t, err)
	require.True(t, b.CanBeRenewed())

	due := b.DueDate
	require.NoError(t, b.Renew())
	assert.Equal(t, due.AddDate(0, 0, RenewalDays), b.DueDate)
	assert.Equal(t, 3, b.DurationDays(), "renewal must not rewrite the borrowing date")
}

func TestRenewIsRejectedAfterFirstWeek(t *testing.T) {
	b, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(10))
	require.NoError(t, err)
	require.False(t, b.IsOverdue())

	assert.False(t, b.CanBeRenewed())
	var serr StateError
	require.ErrorAs(t, b.Renew(), &serr)
}

func TestRenewIsRejectedWhenOverdueOrReturned(t *testing.T) {
	overdue, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(20))
	require.NoError(t, err)
	assert.False(t, overdue.CanBeRenewed())

	returned, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(2))
	require.NoError(t, err)
	require.NoError(t, returned.Return(time.Now()))
	assert.False(t, returned.CanBeRenewed())

	var serr StateError
	require.ErrorAs(t, returned.Renew(), &serr)
}

// storedDate mimics how a date column comes back from the database: the
// calendar date at UTC midnight, regardless of the server's local zone.
func storedDate(n int) time.Time {
	y, m, d := time.Now().AddDate(0, 0, -n).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetweenIgnoresLocations(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	a := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 3, 0, 0, 0, 0, jakarta)

	assert.Equal(t, 2, daysBetween(a, b))
	assert.Equal(t, -2, daysBetween(b, a))
	assert.Equal(t, 0, daysBetween(a, a.In(jakarta)))
}

func TestDaysBetweenAcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward on 8 Mar 2026: the wall-clock gap is 47h, still 2 days.
	a := time.Date(2026, time.March, 7, 0, 0, 0, 0, ny)
	b := time.Date(2026, time.March, 9, 0, 0, 0, 0, ny)
	assert.Equal(t, 2, daysBetween(a, b))

	// Fall back on 1 Nov 2026: 49h gap, still 2 days.
	a = time.Date(2026, time.October, 31, 0, 0, 0, 0, ny)
	b = time.Date(2026, time.November, 2, 0, 0, 0, 0, ny)
	assert.Equal(t, 2, daysBetween(a, b))
}

func TestOverdueMathWithStoredUTCDates(t *testing.T) {
	b := &Borrowing{
		ID:            uuid.New(),
		BookID:        uuid.New(),
		MemberID:      uuid.New(),
		BorrowingDate: storedDate(20),
	}
	b.DueDate = b.BorrowingDate.AddDate(0, 0, LoanPeriodDays)

	assert.True(t, b.IsOverdue())
	assert.Equal(t, 6, b.DaysOverdue())
	assert.Equal(t, 6.0, b.FineAmount())
	assert.Equal(t, 20, b.DurationDays())
}

func TestLoanTermClassification(t *testing.T) {
	short, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(5))
	require.NoError(t, err)
	assert.True(t, short.IsShortTerm())
	assert.False(t, short.IsLongTerm())

	long, err := NewBorrowing(uuid.New(), uuid.New(), daysAgo(35))
	require.NoError(t, err)
	assert.False(t, long.IsShortTerm())
	assert.True(t, long.IsLongTerm())
}
