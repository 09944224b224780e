package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

var earliestAuthorBirth = time.Date(1000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Author is a validated catalog entity. Identity is the ID; two authors with
// equal fields but different IDs are different authors.
type Author struct {
	ID        uuid.UUID
	Name      string
	BirthDate time.Time
	DeathDate *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor constructs an Author and fails fast with a ValidationError if any
// business rule is violated.
func NewAuthor(name string, birthDate time.Time, deathDate *time.Time) (*Author, error) {
	a := &Author{
		ID:        uuid.New(),
		Name:      name,
		BirthDate: dateOnly(birthDate),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if deathDate != nil {
		d := dateOnly(*deathDate)
		a.DeathDate = &d
	}
	if err := a.validateName(); err != nil {
		return nil, err
	}
	if err := a.validateBirthDate(); err != nil {
		return nil, err
	}
	if err := a.validateDeathDate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Author) validateName() error {
	return validateName("name", "author name", a.Name)
}

func (a *Author) validateBirthDate() error {
	if a.BirthDate.IsZero() {
		return ValidationError{Field: "birth_date", Message: "birth date cannot be empty"}
	}
	if err := notInFuture("birth_date", "birth date", a.BirthDate); err != nil {
		return err
	}
	// No authors before 1000 AD.
	return notBefore("birth_date", "birth date", a.BirthDate, earliestAuthorBirth)
}

func (a *Author) validateDeathDate() error {
	if a.DeathDate == nil {
		return nil
	}
	if a.DeathDate.Before(a.BirthDate) {
		return ValidationError{Field: "death_date", Message: "death date cannot be before birth date"}
	}
	return notInFuture("death_date", "death date", *a.DeathDate)
}

func (a *Author) IsAlive() bool { return a.DeathDate == nil }

// Age is the author's current age, or age at death. Year-based, as catalog
// records rarely carry exact birthdays.
func (a *Author) Age() int {
	if a.IsAlive() {
		return time.Now().Year() - a.BirthDate.Year()
	}
	return a.DeathDate.Year() - a.BirthDate.Year()
}

// IsContemporary reports whether the author was born within the last 100 years.
func (a *Author) IsContemporary() bool {
	return time.Now().Year()-a.BirthDate.Year() <= 100
}

// IsClassicAuthor reports whether the author was born before 1900.
func (a *Author) IsClassicAuthor() bool {
	return a.BirthDate.Year() < 1900
}

func (a *Author) FullName() string { return strings.TrimSpace(a.Name) }

// Initials returns "F.L." style initials from the first and last name parts.
func (a *Author) Initials() string {
	parts := strings.Fields(a.Name)
	if len(parts) >= 2 {
		return string([]rune(parts[0])[0]) + "." + string([]rune(parts[len(parts)-1])[0]) + "."
	}
	return string([]rune(strings.TrimSpace(a.Name))[0]) + "."
}

// Rename updates the author name; on validation failure the entity is left
// unchanged.
func (a *Author) Rename(name string) error {
	if err := validateName("name", "author name", name); err != nil {
		return err
	}
	a.Name = name
	a.UpdatedAt = time.Now()
	return nil
}

// SetDeathDate records the author's death; on validation failure the entity
// is left unchanged.
func (a *Author) SetDeathDate(deathDate time.Time) error {
	d := dateOnly(deathDate)
	if d.Before(a.BirthDate) {
		return ValidationError{Field: "death_date", Message: "death date cannot be before birth date"}
	}
	if err := notInFuture("death_date", "death date", d); err != nil {
		return err
	}
	a.DeathDate = &d
	a.UpdatedAt = time.Now()
	return nil
}
