package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
)

type bookFixture struct {
	svc       *BookService
	store     *memStore
	books     *fakeBooks
	genres    *fakeGenres
	author    *entity.Author
	publisher *entity.Publisher
	genre     *entity.Genre
}

func newBookFixture(t *testing.T) *bookFixture {
	t.Helper()
	store := newMemStore()

	author, err := entity.NewAuthor("George Orwell", time.Date(1903, 6, 25, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	store.authors[author.ID] = author

	publisher, err := entity.NewPublisher("Penguin Random House", "https://www.penguinrandomhouse.com")
	require.NoError(t, err)
	store.publishers[publisher.ID] = publisher

	genre, err := entity.NewGenre("Science Fiction")
	require.NoError(t, err)
	store.genres[genre.ID] = genre

	books := &fakeBooks{store: store}
	genres := &fakeGenres{store: store}
	svc := NewBookService(
		books,
		&fakeAuthors{store: store},
		&fakePublishers{store: store},
		genres,
		&fakeUoW{store: store},
		nil, // no cache in tests
		testLogger(),
		nil, // no search index in tests
		"",
		nil, // no object storage in tests
		"",
	)
	return &bookFixture{svc: svc, store: store, books: books, genres: genres, author: author, publisher: publisher, genre: genre}
}

func (f *bookFixture) input() CreateBookInput {
	return CreateBookInput{
		Title:         "Nineteen Eighty-Four",
		Description:   "A dystopian novel about surveillance, truth, and power.",
		PublishedDate: time.Date(1949, 6, 8, 0, 0, 0, 0, time.UTC),
		ISBN:          "9780451524935",
		AuthorID:      f.author.ID,
		PublisherID:   f.publisher.ID,
		GenreID:       f.genre.ID,
	}
}

func TestCreateBook(t *testing.T) {
	f := newBookFixture(t)

	view, err := f.svc.CreateBook(context.Background(), f.input())
	require.NoError(t, err)

	assert.Equal(t, "Nineteen Eighty-Four", view.Title)
	assert.Equal(t, "9780451524935", view.ISBN)
	require.NotNil(t, view.Author)
	assert.Equal(t, f.author.ID, view.Author.ID)
	require.NotNil(t, view.Publisher)
	assert.True(t, view.Publisher.IsMajorPublisher)
	require.NotNil(t, view.Genre)
	assert.Equal(t, "fiction", view.Genre.Category)

	stored := f.store.books[view.ID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.GenreID)
	assert.Equal(t, f.genre.ID, *stored.GenreID)
	assert.True(t, f.store.genres[f.genre.ID].ContainsBook(view.ID))
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	f := newBookFixture(t)

	_, err := f.svc.CreateBook(context.Background(), f.input())
	require.NoError(t, err)

	in := f.input()
	in.Title = "A Different Title"
	_, err = f.svc.CreateBook(context.Background(), in)
	var derr entity.DuplicateError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "ISBN", derr.Field)
	assert.Len(t, f.store.books, 1)
}

func TestCreateBookUnknownReferences(t *testing.T) {
	f := newBookFixture(t)
	var nfe entity.NotFoundError

	in := f.input()
	in.AuthorID = uuid.New()
	_, err := f.svc.CreateBook(context.Background(), in)
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "author", nfe.Entity)

	in = f.input()
	in.PublisherID = uuid.New()
	_, err = f.svc.CreateBook(context.Background(), in)
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "publisher", nfe.Entity)

	in = f.input()
	in.GenreID = uuid.New()
	_, err = f.svc.CreateBook(context.Background(), in)
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "genre", nfe.Entity)

	assert.Empty(t, f.store.books, "no write may happen when a reference is missing")
}

func TestCreateBookInvalidPayload(t *testing.T) {
	f := newBookFixture(t)

	in := f.input()
	in.ISBN = "123"
	_, err := f.svc.CreateBook(context.Background(), in)
	var verr entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "isbn", verr.Field)
	assert.Empty(t, f.store.books)
}

func TestCreateBookRollsBackOnGenreFailure(t *testing.T) {
	f := newBookFixture(t)
	f.genres.addBookErr = errors.New("connection reset")

	_, err := f.svc.CreateBook(context.Background(), f.input())
	require.Error(t, err)
	assert.Empty(t, f.store.books, "failed genre association must roll back the book insert")
}

func TestGetBook(t *testing.T) {
	f := newBookFixture(t)
	created, err := f.svc.CreateBook(context.Background(), f.input())
	require.NoError(t, err)

	view, err := f.svc.GetBook(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, created.ID, view.ID)
	require.NotNil(t, view.Genre)
	assert.Equal(t, f.genre.ID, view.Genre.ID)

	missing, err := f.svc.GetBook(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListBooks(t *testing.T) {
	f := newBookFixture(t)

	first, err := f.svc.CreateBook(context.Background(), f.input())
	require.NoError(t, err)

	in := f.input()
	in.Title = "Animal Farm"
	in.ISBN = "9780451526342"
	second, err := f.svc.CreateBook(context.Background(), in)
	require.NoError(t, err)

	views, err := f.svc.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	ids := []uuid.UUID{views[0].ID, views[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestSearchBooksWithoutIndex(t *testing.T) {
	f := newBookFixture(t)
	hits, err := f.svc.SearchBooks(context.Background(), "orwell", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
