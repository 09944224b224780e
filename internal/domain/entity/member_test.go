package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearsAgo(n int) time.Time {
	return time.Now().AddDate(-n, 0, 0)
}

func TestNewMember(t *testing.T) {
	m, err := NewMember("John", "Doe", yearsAgo(30))
	require.NoError(t, err)

	assert.Equal(t, "John Doe", m.FullName())
	assert.Equal(t, "J.D.", m.Initials())
	assert.Equal(t, 30, m.Age())
	assert.True(t, m.IsAdult())
	assert.False(t, m.IsMinor())
	assert.False(t, m.IsSenior())
	assert.Equal(t, 0, m.BorrowingCount())
	assert.False(t, m.IsActiveBorrower())
}

func TestNewMemberValidation(t *testing.T) {
	var verr ValidationError

	_, err := NewMember("J", "Doe", yearsAgo(30))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "first_name", verr.Field)

	_, err = NewMember("John", " ", yearsAgo(30))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "last_name", verr.Field)

	// too young
	_, err = NewMember("John", "Doe", yearsAgo(4))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "birth_date", verr.Field)

	// before 1900
	_, err = NewMember("John", "Doe", time.Date(1890, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "birth_date", verr.Field)

	// future
	_, err = NewMember("John", "Doe", time.Now().AddDate(1, 0, 0))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "birth_date", verr.Field)
}

func TestMemberAgeIsBirthdayAware(t *testing.T) {
	// birthday is tomorrow, so this year does not count yet
	notYet, err := NewMember("Jane", "Doe", time.Now().AddDate(-30, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 29, notYet.Age())

	// birthday is today
	exact, err := NewMember("Jane", "Doe", yearsAgo(30))
	require.NoError(t, err)
	assert.Equal(t, 30, exact.Age())
}

func TestMemberAgeBands(t *testing.T) {
	minor, err := NewMember("Kid", "Doe", yearsAgo(10))
	require.NoError(t, err)
	assert.True(t, minor.IsMinor())
	assert.False(t, minor.IsAdult())

	senior, err := NewMember("Gran", "Doe", yearsAgo(70))
	require.NoError(t, err)
	assert.True(t, senior.IsSenior())
	assert.True(t, senior.IsAdult())
}

func TestMemberBorrowingList(t *testing.T) {
	m, err := NewMember("John", "Doe", yearsAgo(30))
	require.NoError(t, err)

	first := uuid.New()
	second := uuid.New()

	m.AddBorrowing(first)
	m.AddBorrowing(second)
	m.AddBorrowing(first) // duplicate is a no-op
	assert.Equal(t, 2, m.BorrowingCount())
	assert.Equal(t, []uuid.UUID{first, second}, m.BorrowingIDs)
	assert.True(t, m.IsActiveBorrower())

	m.RemoveBorrowing(first)
	assert.Equal(t, []uuid.UUID{second}, m.BorrowingIDs)

	m.RemoveBorrowing(uuid.New()) // unknown id is a no-op
	assert.Equal(t, 1, m.BorrowingCount())
}

func TestMemberCanBorrowMore(t *testing.T) {
	m, err := NewMember("John", "Doe", yearsAgo(30))
	require.NoError(t, err)

	for i := 0; i < MaxActiveBorrowings; i++ {
		assert.True(t, m.CanBorrowMore(MaxActiveBorrowings))
		m.AddBorrowing(uuid.New())
	}
	assert.False(t, m.CanBorrowMore(MaxActiveBorrowings))
}

func TestMemberRename(t *testing.T) {
	m, err := NewMember("John", "Doe", yearsAgo(30))
	require.NoError(t, err)

	require.NoError(t, m.SetFirstName("Jane"))
	assert.Equal(t, "Jane Doe", m.FullName())

	var verr ValidationError
	require.ErrorAs(t, m.SetLastName(""), &verr)
	assert.Equal(t, "Jane Doe", m.FullName(), "failed update must not change the entity")
}
