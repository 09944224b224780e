package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

var fictionGenres = []string{
	"fiction",
	"mystery",
	"romance",
	"science fiction",
	"fantasy",
	"thriller",
	"horror",
	"adventure",
	"western",
	"young adult",
	"children",
	"drama",
	"comedy",
}

var nonFictionGenres = []string{
	"non-fiction",
	"biography",
	"autobiography",
	"history",
	"philosophy",
	"science",
	"technology",
	"cooking",
	"travel",
	"self-help",
	"business",
	"economics",
	"politics",
	"religion",
	"reference",
	"academic",
	"textbook",
}

// Genre is a validated catalog entity. BookIDs is the insertion-ordered set
// of books associated with the genre; duplicates are rejected.
type Genre struct {
	ID        uuid.UUID
	Name      string
	BookIDs   []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewGenre(name string) (*Genre, error) {
	g := &Genre{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := validateName("name", "genre name", g.Name); err != nil {
		return nil, err
	}
	return g, nil
}

// AddBook associates a book with the genre. Adding an already-associated book
// is a no-op.
func (g *Genre) AddBook(bookID uuid.UUID) {
	if g.ContainsBook(bookID) {
		return
	}
	g.BookIDs = append(g.BookIDs, bookID)
}

// RemoveBook drops a book association, preserving the order of the rest.
func (g *Genre) RemoveBook(bookID uuid.UUID) {
	for i, id := range g.BookIDs {
		if id == bookID {
			g.BookIDs = append(g.BookIDs[:i], g.BookIDs[i+1:]...)
			return
		}
	}
}

func (g *Genre) ContainsBook(bookID uuid.UUID) bool {
	for _, id := range g.BookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

func (g *Genre) BookCount() int { return len(g.BookIDs) }

// IsPopular reports whether the genre holds more than 10 books.
func (g *Genre) IsPopular() bool { return g.BookCount() > 10 }

// IsNiche reports whether the genre holds fewer than 5 books.
func (g *Genre) IsNiche() bool { return g.BookCount() < 5 }

func (g *Genre) IsFiction() bool {
	return containsFold(fictionGenres, g.Name)
}

func (g *Genre) IsNonFiction() bool {
	return containsFold(nonFictionGenres, g.Name)
}

// Category classifies the genre as fiction, non-fiction, or other.
func (g *Genre) Category() string {
	switch {
	case g.IsFiction():
		return "fiction"
	case g.IsNonFiction():
		return "non-fiction"
	default:
		return "other"
	}
}

func (g *Genre) DisplayName() string {
	return strings.Title(strings.TrimSpace(g.Name)) //nolint:staticcheck // catalog names are ASCII
}

// Rename updates the genre name; the entity is unchanged on failure.
func (g *Genre) Rename(name string) error {
	if err := validateName("name", "genre name", name); err != nil {
		return err
	}
	g.Name = name
	g.UpdatedAt = time.Now()
	return nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
