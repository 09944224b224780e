package application

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
)

// In-memory repository fakes backed by one shared store. Reads and writes
// clone entities, so the store only changes through Save, and the fake unit
// of work can roll back by restoring a snapshot of the maps.

type memStore struct {
	authors    map[uuid.UUID]*entity.Author
	publishers map[uuid.UUID]*entity.Publisher
	genres     map[uuid.UUID]*entity.Genre
	books      map[uuid.UUID]*entity.Book
	members    map[uuid.UUID]*entity.Member
	borrowings map[uuid.UUID]*entity.Borrowing
}

func newMemStore() *memStore {
	return &memStore{
		authors:    map[uuid.UUID]*entity.Author{},
		publishers: map[uuid.UUID]*entity.Publisher{},
		genres:     map[uuid.UUID]*entity.Genre{},
		books:      map[uuid.UUID]*entity.Book{},
		members:    map[uuid.UUID]*entity.Member{},
		borrowings: map[uuid.UUID]*entity.Borrowing{},
	}
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	for k, v := range s.authors {
		snap.authors[k] = v
	}
	for k, v := range s.publishers {
		snap.publishers[k] = v
	}
	for k, v := range s.genres {
		snap.genres[k] = v
	}
	for k, v := range s.books {
		snap.books[k] = v
	}
	for k, v := range s.members {
		snap.members[k] = v
	}
	for k, v := range s.borrowings {
		snap.borrowings[k] = v
	}
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.authors = snap.authors
	s.publishers = snap.publishers
	s.genres = snap.genres
	s.books = snap.books
	s.members = snap.members
	s.borrowings = snap.borrowings
}

func cloneBook(b *entity.Book) *entity.Book {
	c := *b
	if b.GenreID != nil {
		id := *b.GenreID
		c.GenreID = &id
	}
	return &c
}

func cloneAuthor(a *entity.Author) *entity.Author {
	c := *a
	if a.DeathDate != nil {
		d := *a.DeathDate
		c.DeathDate = &d
	}
	return &c
}

func clonePublisher(p *entity.Publisher) *entity.Publisher {
	c := *p
	return &c
}

func cloneGenre(g *entity.Genre) *entity.Genre {
	c := *g
	c.BookIDs = append([]uuid.UUID(nil), g.BookIDs...)
	return &c
}

func cloneMember(m *entity.Member) *entity.Member {
	c := *m
	c.BorrowingIDs = append([]uuid.UUID(nil), m.BorrowingIDs...)
	return &c
}

func cloneBorrowing(b *entity.Borrowing) *entity.Borrowing {
	c := *b
	if b.ReturningDate != nil {
		d := *b.ReturningDate
		c.ReturningDate = &d
	}
	return &c
}

type fakeAuthors struct{ store *memStore }

func (f *fakeAuthors) FindByID(_ context.Context, id uuid.UUID) (*entity.Author, error) {
	if a, ok := f.store.authors[id]; ok {
		return cloneAuthor(a), nil
	}
	return nil, nil
}

func (f *fakeAuthors) Save(_ context.Context, a *entity.Author) (*entity.Author, error) {
	f.store.authors[a.ID] = cloneAuthor(a)
	return cloneAuthor(a), nil
}

type fakePublishers struct{ store *memStore }

func (f *fakePublishers) FindByID(_ context.Context, id uuid.UUID) (*entity.Publisher, error) {
	if p, ok := f.store.publishers[id]; ok {
		return clonePublisher(p), nil
	}
	return nil, nil
}

func (f *fakePublishers) Save(_ context.Context, p *entity.Publisher) (*entity.Publisher, error) {
	f.store.publishers[p.ID] = clonePublisher(p)
	return clonePublisher(p), nil
}

type fakeGenres struct {
	store      *memStore
	addBookErr error
}

func (f *fakeGenres) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	if g, ok := f.store.genres[id]; ok {
		return cloneGenre(g), nil
	}
	return nil, nil
}

func (f *fakeGenres) Save(_ context.Context, g *entity.Genre) (*entity.Genre, error) {
	f.store.genres[g.ID] = cloneGenre(g)
	return cloneGenre(g), nil
}

func (f *fakeGenres) AddBookToGenre(_ context.Context, genreID, bookID uuid.UUID) error {
	if f.addBookErr != nil {
		return f.addBookErr
	}
	g, ok := f.store.genres[genreID]
	if !ok {
		return entity.NotFoundError{Entity: "genre", ID: genreID.String()}
	}
	updated := cloneGenre(g)
	updated.AddBook(bookID)
	f.store.genres[genreID] = updated
	if b, ok := f.store.books[bookID]; ok {
		nb := cloneBook(b)
		nb.SetGenre(genreID)
		f.store.books[bookID] = nb
	}
	return nil
}

type fakeBooks struct {
	store   *memStore
	saveErr error
}

func (f *fakeBooks) FindByID(_ context.Context, id uuid.UUID) (*entity.Book, error) {
	if b, ok := f.store.books[id]; ok {
		return cloneBook(b), nil
	}
	return nil, nil
}

func (f *fakeBooks) FindByISBN(_ context.Context, isbn string) (*entity.Book, error) {
	for _, b := range f.store.books {
		if b.ISBN == isbn {
			return cloneBook(b), nil
		}
	}
	return nil, nil
}

func (f *fakeBooks) FindAll(_ context.Context) ([]*entity.Book, error) {
	out := make([]*entity.Book, 0, len(f.store.books))
	for _, b := range f.store.books {
		out = append(out, cloneBook(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeBooks) Save(_ context.Context, b *entity.Book) (*entity.Book, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.store.books[b.ID] = cloneBook(b)
	return cloneBook(b), nil
}

type fakeMembers struct {
	store   *memStore
	saveErr error
}

func (f *fakeMembers) FindByID(_ context.Context, id uuid.UUID) (*entity.Member, error) {
	if m, ok := f.store.members[id]; ok {
		return cloneMember(m), nil
	}
	return nil, nil
}

func (f *fakeMembers) Save(_ context.Context, m *entity.Member) (*entity.Member, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.store.members[m.ID] = cloneMember(m)
	return cloneMember(m), nil
}

type fakeBorrowings struct{ store *memStore }

func (f *fakeBorrowings) FindByID(_ context.Context, id uuid.UUID) (*entity.Borrowing, error) {
	if b, ok := f.store.borrowings[id]; ok {
		return cloneBorrowing(b), nil
	}
	return nil, nil
}

func (f *fakeBorrowings) Save(_ context.Context, b *entity.Borrowing) (*entity.Borrowing, error) {
	f.store.borrowings[b.ID] = cloneBorrowing(b)
	return cloneBorrowing(b), nil
}

func (f *fakeBorrowings) list(filter func(*entity.Borrowing) bool) []*entity.Borrowing {
	out := make([]*entity.Borrowing, 0)
	for _, b := range f.store.borrowings {
		if filter(b) {
			out = append(out, cloneBorrowing(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (f *fakeBorrowings) FindActiveForMember(_ context.Context, memberID uuid.UUID) ([]*entity.Borrowing, error) {
	return f.list(func(b *entity.Borrowing) bool { return b.MemberID == memberID && !b.IsReturned() }), nil
}

func (f *fakeBorrowings) FindActiveForBook(_ context.Context, bookID uuid.UUID) ([]*entity.Borrowing, error) {
	return f.list(func(b *entity.Borrowing) bool { return b.BookID == bookID && !b.IsReturned() }), nil
}

func (f *fakeBorrowings) FindAllForMember(_ context.Context, memberID uuid.UUID) ([]*entity.Borrowing, error) {
	return f.list(func(b *entity.Borrowing) bool { return b.MemberID == memberID }), nil
}

func (f *fakeBorrowings) CountForMember(_ context.Context, memberID uuid.UUID) (int, error) {
	return len(f.list(func(b *entity.Borrowing) bool { return b.MemberID == memberID })), nil
}

// fakeUoW restores the store to its pre-transaction state when fn fails,
// mirroring a database rollback.
type fakeUoW struct{ store *memStore }

func (u *fakeUoW) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := u.store.snapshot()
	if err := fn(ctx); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

// fakeEvents records published loan events.
type fakeEvents struct {
	published []LoanEvent
	err       error
}

func (f *fakeEvents) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	if ev, ok := body.(LoanEvent); ok {
		f.published = append(f.published, ev)
	}
	return nil
}
