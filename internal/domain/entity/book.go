package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Books cannot predate the printing press.
var earliestPublication = time.Date(1450, time.January, 1, 0, 0, 0, 0, time.UTC)

// Book is a validated catalog entity referencing its author, publisher and
// (optionally) one genre by ID. Enriched presentation belongs to the
// application layer's read models, not here.
type Book struct {
	ID            uuid.UUID
	Title         string
	Description   string
	PublishedDate time.Time
	ISBN          string
	AuthorID      uuid.UUID
	PublisherID   uuid.UUID
	GenreID       *uuid.UUID
	CoverURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBook(title, description string, publishedDate time.Time, isbn string, authorID, publisherID uuid.UUID) (*Book, error) {
	b := &Book{
		ID:            uuid.New(),
		Title:         title,
		Description:   description,
		PublishedDate: dateOnly(publishedDate),
		ISBN:          isbn,
		AuthorID:      authorID,
		PublisherID:   publisherID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := validateName("title", "book title", b.Title); err != nil {
		return nil, err
	}
	if err := validateISBN(b.ISBN); err != nil {
		return nil, err
	}
	if err := b.validatePublishedDate(); err != nil {
		return nil, err
	}
	if err := validateDescription(b.Description); err != nil {
		return nil, err
	}
	return b, nil
}

// validateISBN accepts exactly 10 or 13 digit characters, nothing else.
func validateISBN(isbn string) error {
	if strings.TrimSpace(isbn) == "" {
		return ValidationError{Field: "isbn", Message: "ISBN cannot be empty"}
	}
	if len(isbn) != 10 && len(isbn) != 13 {
		return ValidationError{Field: "isbn", Message: "ISBN must be either 10 or 13 digits"}
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return ValidationError{Field: "isbn", Message: "ISBN must contain only digits"}
		}
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ValidationError{Field: "description", Message: "book description cannot be empty"}
	}
	if len(strings.TrimSpace(description)) < 10 {
		return ValidationError{Field: "description", Message: "book description must be at least 10 characters long"}
	}
	return nil
}

func (b *Book) validatePublishedDate() error {
	if b.PublishedDate.IsZero() {
		return ValidationError{Field: "published_date", Message: "published date cannot be empty"}
	}
	if err := notInFuture("published_date", "published date", b.PublishedDate); err != nil {
		return err
	}
	return notBefore("published_date", "published date", b.PublishedDate, earliestPublication)
}

// SetGenre associates the book with a genre.
func (b *Book) SetGenre(genreID uuid.UUID) {
	b.GenreID = &genreID
	b.UpdatedAt = time.Now()
}

// AgeInYears is the age of the book counted in calendar years.
func (b *Book) AgeInYears() int {
	return time.Now().Year() - b.PublishedDate.Year()
}

// IsClassic reports whether the book is at least 50 years old.
func (b *Book) IsClassic() bool { return b.AgeInYears() >= 50 }

// Retitle updates the title; the entity is unchanged on failure.
func (b *Book) Retitle(title string) error {
	if err := validateName("title", "book title", title); err != nil {
		return err
	}
	b.Title = title
	b.UpdatedAt = time.Now()
	return nil
}

// SetDescription updates the description; the entity is unchanged on failure.
func (b *Book) SetDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	b.Description = description
	b.UpdatedAt = time.Now()
	return nil
}
