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

func newCatalogFixture() (*CatalogService, *memStore) {
	store := newMemStore()
	svc := NewCatalogService(
		&fakeAuthors{store: store},
		&fakePublishers{store: store},
		&fakeGenres{store: store},
		&fakeMembers{store: store},
		testLogger(),
	)
	return svc, store
}

func TestCreateAndGetAuthor(t *testing.T) {
	svc, _ := newCatalogFixture()

	created, err := svc.CreateAuthor(context.Background(), "George Orwell", time.Date(1903, 6, 25, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	assert.True(t, created.IsAlive)

	got, err := svc.GetAuthor(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "George Orwell", got.Name)

	missing, err := svc.GetAuthor(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateAuthorValidation(t *testing.T) {
	svc, store := newCatalogFixture()

	_, err := svc.CreateAuthor(context.Background(), "", time.Date(1903, 6, 25, 0, 0, 0, 0, time.UTC), nil)
	var verr entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.authors)
}

func TestCreatePublisherAndGenre(t *testing.T) {
	svc, _ := newCatalogFixture()

	pub, err := svc.CreatePublisher(context.Background(), "Penguin Random House", "https://www.penguinrandomhouse.com")
	require.NoError(t, err)
	assert.True(t, pub.IsMajorPublisher)
	assert.Equal(t, "www.penguinrandomhouse.com", pub.Domain)

	genre, err := svc.CreateGenre(context.Background(), "Biography")
	require.NoError(t, err)
	assert.Equal(t, "non-fiction", genre.Category)
	assert.True(t, genre.IsNiche)
}

func TestCreateMember(t *testing.T) {
	svc, _ := newCatalogFixture()

	view, err := svc.CreateMember(context.Background(), "John", "Doe", time.Now().AddDate(-30, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "John Doe", view.FullName)
	assert.True(t, view.CanBorrowMore)
	assert.Equal(t, 0, view.BorrowingCount)

	_, err = svc.CreateMember(context.Background(), "Kid", "Doe", time.Now().AddDate(-3, 0, 0))
	var verr entity.ValidationError
	require.ErrorAs(t, err, &verr)
}
