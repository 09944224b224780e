package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxActiveBorrowings is the default cap on concurrent loans per member.
const MaxActiveBorrowings = 5

var earliestMemberBirth = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Member is a library member. BorrowingIDs is the insertion-ordered set of
// the member's active loans; duplicates are rejected.
type Member struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	BirthDate    time.Time
	BorrowingIDs []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewMember(firstName, lastName string, birthDate time.Time) (*Member, error) {
	m := &Member{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: dateOnly(birthDate),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := validateName("first_name", "first name", m.FirstName); err != nil {
		return nil, err
	}
	if err := validateName("last_name", "last name", m.LastName); err != nil {
		return nil, err
	}
	if err := m.validateBirthDate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Member) validateBirthDate() error {
	if m.BirthDate.IsZero() {
		return ValidationError{Field: "birth_date", Message: "birth date cannot be empty"}
	}
	if err := notInFuture("birth_date", "birth date", m.BirthDate); err != nil {
		return err
	}
	if yearsBetween(m.BirthDate, today()) < 5 {
		return ValidationError{Field: "birth_date", Message: "member must be at least 5 years old"}
	}
	return notBefore("birth_date", "birth date", m.BirthDate, earliestMemberBirth)
}

// Age is the member's exact current age, month and day aware.
func (m *Member) Age() int { return yearsBetween(m.BirthDate, today()) }

func (m *Member) IsMinor() bool  { return m.Age() < 18 }
func (m *Member) IsAdult() bool  { return m.Age() >= 18 }
func (m *Member) IsSenior() bool { return m.Age() >= 65 }

func (m *Member) FullName() string {
	return strings.TrimSpace(m.FirstName) + " " + strings.TrimSpace(m.LastName)
}

func (m *Member) Initials() string {
	return string([]rune(m.FirstName)[0]) + "." + string([]rune(m.LastName)[0]) + "."
}

func (m *Member) BorrowingCount() int { return len(m.BorrowingIDs) }

// CanBorrowMore reports whether the member is below the concurrent-loan cap.
func (m *Member) CanBorrowMore(maxBooks int) bool {
	return m.BorrowingCount() < maxBooks
}

func (m *Member) IsActiveBorrower() bool { return m.BorrowingCount() > 0 }

// IsHeavyBorrower reports whether the member holds more than 10 loans.
func (m *Member) IsHeavyBorrower() bool { return m.BorrowingCount() > 10 }

// AddBorrowing records an active loan. Adding an already-recorded loan is a
// no-op.
func (m *Member) AddBorrowing(borrowingID uuid.UUID) {
	for _, id := range m.BorrowingIDs {
		if id == borrowingID {
			return
		}
	}
	m.BorrowingIDs = append(m.BorrowingIDs, borrowingID)
	m.UpdatedAt = time.Now()
}

// RemoveBorrowing drops a loan from the active list, e.g. on return.
func (m *Member) RemoveBorrowing(borrowingID uuid.UUID) {
	for i, id := range m.BorrowingIDs {
		if id == borrowingID {
			m.BorrowingIDs = append(m.BorrowingIDs[:i], m.BorrowingIDs[i+1:]...)
			m.UpdatedAt = time.Now()
			return
		}
	}
}

// SetFirstName updates the first name; the entity is unchanged on failure.
func (m *Member) SetFirstName(firstName string) error {
	if err := validateName("first_name", "first name", firstName); err != nil {
		return err
	}
	m.FirstName = firstName
	m.UpdatedAt = time.Now()
	return nil
}

// SetLastName updates the last name; the entity is unchanged on failure.
func (m *Member) SetLastName(lastName string) error {
	if err := validateName("last_name", "last name", lastName); err != nil {
		return err
	}
	m.LastName = lastName
	m.UpdatedAt = time.Now()
	return nil
}

// MembershipDurationDays is the number of days since registration.
func (m *Member) MembershipDurationDays() int {
	return daysBetween(m.CreatedAt, time.Now())
}

// IsLongTermMember reports whether the member registered over a year ago.
func (m *Member) IsLongTermMember() bool {
	return m.MembershipDurationDays() > 365
}
