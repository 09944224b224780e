// Package application orchestrates the domain entities and repository ports
// into the library's use cases. Each method is one business operation
// executed within a single transactional boundary.
package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
)

// Read models for presentation. Views are assembled from the entities on
// demand; nothing here is persisted.

type AuthorView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	BirthDate time.Time  `json:"birth_date"`
	DeathDate *time.Time `json:"death_date,omitempty"`
	IsAlive   bool       `json:"is_alive"`
	Age       int        `json:"age"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type PublisherView struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Website                string    `json:"website"`
	Domain                 string    `json:"domain"`
	IsMajorPublisher       bool      `json:"is_major_publisher"`
	IsUniversityPress      bool      `json:"is_university_press"`
	IsIndependentPublisher bool      `json:"is_independent_publisher"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type GenreView struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	BookIDs      []uuid.UUID `json:"book_ids"`
	BookCount    int         `json:"book_count"`
	IsPopular    bool        `json:"is_popular"`
	IsNiche      bool        `json:"is_niche"`
	IsFiction    bool        `json:"is_fiction"`
	IsNonFiction bool        `json:"is_non_fiction"`
	Category     string      `json:"category"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// BookView is the enriched read model: the book plus its resolved author,
// publisher and genre.
type BookView struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	PublishedDate time.Time      `json:"published_date"`
	ISBN          string         `json:"isbn"`
	CoverURL      string         `json:"cover_url,omitempty"`
	AgeInYears    int            `json:"age_in_years"`
	IsClassic     bool           `json:"is_classic"`
	Author        *AuthorView    `json:"author,omitempty"`
	Publisher     *PublisherView `json:"publisher,omitempty"`
	Genre         *GenreView     `json:"genre,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type MemberView struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	FullName        string    `json:"full_name"`
	BirthDate       time.Time `json:"birth_date"`
	Age             int       `json:"age"`
	IsMinor         bool      `json:"is_minor"`
	IsAdult         bool      `json:"is_adult"`
	IsSenior        bool      `json:"is_senior"`
	BorrowingCount  int       `json:"borrowing_count"`
	CanBorrowMore   bool      `json:"can_borrow_more"`
	IsHeavyBorrower bool      `json:"is_heavy_borrower"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BorrowingView is the full derived view of a loan.
type BorrowingView struct {
	ID            uuid.UUID  `json:"id"`
	BookID        uuid.UUID  `json:"book_id"`
	MemberID      uuid.UUID  `json:"member_id"`
	BorrowingDate time.Time  `json:"borrowing_date"`
	DueDate       time.Time  `json:"due_date"`
	ReturningDate *time.Time `json:"returning_date,omitempty"`
	IsReturned    bool       `json:"is_returned"`
	IsOverdue     bool       `json:"is_overdue"`
	Status        string     `json:"status"`
	DaysOverdue   int        `json:"days_overdue"`
	DurationDays  int        `json:"borrowing_duration_days"`
	RemainingDays int        `json:"remaining_days"`
	FineAmount    float64    `json:"fine_amount"`
	CanBeRenewed  bool       `json:"can_be_renewed"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MemberStatsView summarizes a member's borrowing history.
type MemberStatsView struct {
	MemberID           uuid.UUID `json:"member_id"`
	TotalBorrowings    int       `json:"total_borrowings"`
	ActiveBorrowings   int       `json:"active_borrowings"`
	ReturnedBorrowings int       `json:"returned_borrowings"`
}

type BorrowedBookView struct {
	BookID        uuid.UUID  `json:"book_id"`
	BookTitle     string     `json:"book_title"`
	BorrowingDate time.Time  `json:"borrowing_date"`
	ReturningDate *time.Time `json:"returning_date,omitempty"`
	IsActive      bool       `json:"is_active"`
}

type ActiveBookView struct {
	BookID        uuid.UUID `json:"book_id"`
	BookTitle     string    `json:"book_title"`
	BorrowingDate time.Time `json:"borrowing_date"`
	DaysBorrowed  int       `json:"days_borrowed"`
}

func NewAuthorView(a *entity.Author) *AuthorView {
	return &AuthorView{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: a.BirthDate,
		DeathDate: a.DeathDate,
		IsAlive:   a.IsAlive(),
		Age:       a.Age(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewPublisherView(p *entity.Publisher) *PublisherView {
	return &PublisherView{
		ID:                     p.ID,
		Name:                   p.Name,
		Website:                p.Website,
		Domain:                 p.Domain(),
		IsMajorPublisher:       p.IsMajorPublisher(),
		IsUniversityPress:      p.IsUniversityPress(),
		IsIndependentPublisher: p.IsIndependentPublisher(),
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func NewGenreView(g *entity.Genre) *GenreView {
	return &GenreView{
		ID:           g.ID,
		Name:         g.Name,
		BookIDs:      g.BookIDs,
		BookCount:    g.BookCount(),
		IsPopular:    g.IsPopular(),
		IsNiche:      g.IsNiche(),
		IsFiction:    g.IsFiction(),
		IsNonFiction: g.IsNonFiction(),
		Category:     g.Category(),
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func NewMemberView(m *entity.Member) *MemberView {
	return &MemberView{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		FullName:        m.FullName(),
		BirthDate:       m.BirthDate,
		Age:             m.Age(),
		IsMinor:         m.IsMinor(),
		IsAdult:         m.IsAdult(),
		IsSenior:        m.IsSenior(),
		BorrowingCount:  m.BorrowingCount(),
		CanBorrowMore:   m.CanBorrowMore(entity.MaxActiveBorrowings),
		IsHeavyBorrower: m.IsHeavyBorrower(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func NewBorrowingView(b *entity.Borrowing) *BorrowingView {
	return &BorrowingView{
		ID:            b.ID,
		BookID:        b.BookID,
		MemberID:      b.MemberID,
		BorrowingDate: b.BorrowingDate,
		DueDate:       b.DueDate,
		ReturningDate: b.ReturningDate,
		IsReturned:    b.IsReturned(),
		IsOverdue:     b.IsOverdue(),
		Status:        string(b.Status()),
		DaysOverdue:   b.DaysOverdue(),
		DurationDays:  b.DurationDays(),
		RemainingDays: b.RemainingDays(),
		FineAmount:    b.FineAmount(),
		CanBeRenewed:  b.CanBeRenewed(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
