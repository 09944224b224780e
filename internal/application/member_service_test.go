package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
)

type memberFixture struct {
	svc        *MemberService
	borrowings *BorrowingService
	store      *memStore
}

func newMemberFixture() *memberFixture {
	store := newMemStore()
	borrowRepo := &fakeBorrowings{store: store}
	memberRepo := &fakeMembers{store: store}
	bookRepo := &fakeBooks{store: store}
	return &memberFixture{
		svc:        NewMemberService(memberRepo, borrowRepo, bookRepo, testLogger()),
		borrowings: NewBorrowingService(memberRepo, bookRepo, borrowRepo, &fakeUoW{store: store}, nil, testLogger()),
		store:      store,
	}
}

func TestGetBorrowingStats(t *testing.T) {
	f := newMemberFixture()
	member := mustMember(t, f.store)
	first := mustBook(t, f.store, "Nineteen Eighty-Four", "9780451524935")
	second := mustBook(t, f.store, "Animal Farm", "9780451526342")

	returned, err := f.borrowings.BorrowBook(context.Background(), BorrowBookInput{MemberID: member.ID, BookID: first.ID})
	require.NoError(t, err)
	_, err = f.borrowings.ReturnBook(context.Background(), returned.ID, nil)
	require.NoError(t, err)
	_, err = f.borrowings.BorrowBook(context.Background(), BorrowBookInput{MemberID: member.ID, BookID: second.ID})
	require.NoError(t, err)

	stats, err := f.svc.GetBorrowingStats(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalBorrowings)
	assert.Equal(t, 1, stats.ActiveBorrowings)
	assert.Equal(t, 1, stats.ReturnedBorrowings)
}

func TestGetBorrowingStatsUnknownMember(t *testing.T) {
	f := newMemberFixture()
	_, err := f.svc.GetBorrowingStats(context.Background(), uuid.New())
	var nfe entity.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "member", nfe.Entity)
}

func TestGetBorrowedBooks(t *testing.T) {
	f := newMemberFixture()
	member := mustMember(t, f.store)
	first := mustBook(t, f.store, "Nineteen Eighty-Four", "9780451524935")
	second := mustBook(t, f.store, "Animal Farm", "9780451526342")

	returned, err := f.borrowings.BorrowBook(context.Background(), BorrowBookInput{MemberID: member.ID, BookID: first.ID})
	require.NoError(t, err)
	_, err = f.borrowings.ReturnBook(context.Background(), returned.ID, nil)
	require.NoError(t, err)
	_, err = f.borrowings.BorrowBook(context.Background(), BorrowBookInput{MemberID: member.ID, BookID: second.ID})
	require.NoError(t, err)

	books, err := f.svc.GetBorrowedBooks(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, books, 2)

	titles := map[string]bool{}
	for _, b := range books {
		titles[b.BookTitle] = b.IsActive
	}
	assert.False(t, titles["Nineteen Eighty-Four"])
	assert.True(t, titles["Animal Farm"])
}

func TestGetActiveBooks(t *testing.T) {
	f := newMemberFixture()
	member := mustMember(t, f.store)
	book := mustBook(t, f.store, "Kafka on the Shore", "9781400079278")

	past := time.Now().AddDate(0, 0, -4)
	_, err := f.borrowings.BorrowBook(context.Background(), BorrowBookInput{MemberID: member.ID, BookID: book.ID, BorrowingDate: &past})
	require.NoError(t, err)

	active, err := f.svc.GetActiveBooks(context.Background(), member.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Kafka on the Shore", active[0].BookTitle)
	assert.Equal(t, 4, active[0].DaysBorrowed)
}

func TestGetActiveBooksEmpty(t *testing.T) {
	f := newMemberFixture()
	member := mustMember(t, f.store)

	active, err := f.svc.GetActiveBooks(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Empty(t, active)
}
