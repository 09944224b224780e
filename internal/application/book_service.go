package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
	repo "github.com/oksasatya/go-library-management/internal/domain/repository"
	"github.com/oksasatya/go-library-management/pkg/helpers"
)

const bookViewCacheTTL = 10 * time.Minute

// BookService implements the catalog use cases: create with cross-entity
// checks, read assembly, search, and cover upload. Redis, Elasticsearch and
// GCS are optional; when nil the service degrades to plain DB behavior.
type BookService struct {
	Books      repo.BookRepository
	Authors    repo.AuthorRepository
	Publishers repo.PublisherRepository
	Genres     repo.GenreRepository
	UoW        repo.UnitOfWork

	Redis        *redis.Client
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESBooksIndex string
	GCS          *storage.Client
	GCSBucket    string
}

func NewBookService(
	books repo.BookRepository,
	authors repo.AuthorRepository,
	publishers repo.PublisherRepository,
	genres repo.GenreRepository,
	uow repo.UnitOfWork,
	rdb *redis.Client,
	logger *logrus.Logger,
	es *elasticsearch.Client,
	esBooksIndex string,
	gcs *storage.Client,
	gcsBucket string,
) *BookService {
	return &BookService{
		Books:        books,
		Authors:      authors,
		Publishers:   publishers,
		Genres:       genres,
		UoW:          uow,
		Redis:        rdb,
		Logger:       logger,
		ES:           es,
		ESBooksIndex: esBooksIndex,
		GCS:          gcs,
		GCSBucket:    gcsBucket,
	}
}

type CreateBookInput struct {
	Title         string
	Description   string
	PublishedDate time.Time
	ISBN          string
	AuthorID      uuid.UUID
	PublisherID   uuid.UUID
	GenreID       uuid.UUID
}

func bookViewKey(id uuid.UUID) string {
	return "book:view:" + id.String()
}

// CreateBook checks the ISBN for uniqueness, resolves all referenced
// entities, constructs the Book (full validation), and persists the book plus
// its genre association in one unit of work. No write happens if any check
// fails.
func (s *BookService) CreateBook(ctx context.Context, in CreateBookInput) (*BookView, error) {
	existing, err := s.Books.FindByISBN(ctx, in.ISBN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.DuplicateError{Entity: "book", Field: "ISBN", Value: in.ISBN}
	}

	author, err := s.Authors.FindByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, entity.NotFoundError{Entity: "author", ID: in.AuthorID.String()}
	}
	publisher, err := s.Publishers.FindByID(ctx, in.PublisherID)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		return nil, entity.NotFoundError{Entity: "publisher", ID: in.PublisherID.String()}
	}
	genre, err := s.Genres.FindByID(ctx, in.GenreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, entity.NotFoundError{Entity: "genre", ID: in.GenreID.String()}
	}

	book, err := entity.NewBook(in.Title, in.Description, in.PublishedDate, in.ISBN, author.ID, publisher.ID)
	if err != nil {
		return nil, err
	}

	var saved *entity.Book
	err = s.UoW.WithinTx(ctx, func(txCtx context.Context) error {
		saved, err = s.Books.Save(txCtx, book)
		if err != nil {
			return err
		}
		if err := s.Genres.AddBookToGenre(txCtx, genre.ID, saved.ID); err != nil {
			return err
		}
		saved.SetGenre(genre.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	genre.AddBook(saved.ID)

	s.indexBook(ctx, saved)

	view := s.assembleView(saved, author, publisher, genre)
	s.cacheView(ctx, view)
	return view, nil
}

// GetBook resolves a book and its related entities into the enriched read
// model. Returns (nil, nil) when the book does not exist.
func (s *BookService) GetBook(ctx context.Context, id uuid.UUID) (*BookView, error) {
	if s.Redis != nil {
		var cached BookView
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, bookViewKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	book, err := s.Books.FindByID(ctx, id)
	if err != nil || book == nil {
		return nil, err
	}
	view, err := s.enrich(ctx, book)
	if err != nil {
		return nil, err
	}
	s.cacheView(ctx, view)
	return view, nil
}

// ListBooks returns all books as enriched views.
func (s *BookService) ListBooks(ctx context.Context) ([]*BookView, error) {
	books, err := s.Books.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*BookView, 0, len(books))
	for _, b := range books {
		v, err := s.enrich(ctx, b)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// UploadCover stores a cover image in GCS and records its public URL on the
// book.
func (s *BookService) UploadCover(ctx context.Context, bookID uuid.UUID, r io.Reader, filename, contentType string) (string, error) {
	book, err := s.Books.FindByID(ctx, bookID)
	if err != nil {
		return "", err
	}
	if book == nil {
		return "", entity.NotFoundError{Entity: "book", ID: bookID.String()}
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", bookID.String(), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	book.CoverURL = url
	if _, err := s.Books.Save(ctx, book); err != nil {
		return "", err
	}
	s.invalidateView(ctx, book.ID)
	s.indexBook(ctx, book)
	return url, nil
}

func (s *BookService) enrich(ctx context.Context, book *entity.Book) (*BookView, error) {
	author, err := s.Authors.FindByID(ctx, book.AuthorID)
	if err != nil {
		return nil, err
	}
	publisher, err := s.Publishers.FindByID(ctx, book.PublisherID)
	if err != nil {
		return nil, err
	}
	var genre *entity.Genre
	if book.GenreID != nil {
		if genre, err = s.Genres.FindByID(ctx, *book.GenreID); err != nil {
			return nil, err
		}
	}
	return s.assembleView(book, author, publisher, genre), nil
}

func (s *BookService) assembleView(book *entity.Book, author *entity.Author, publisher *entity.Publisher, genre *entity.Genre) *BookView {
	view := &BookView{
		ID:            book.ID,
		Title:         book.Title,
		Description:   book.Description,
		PublishedDate: book.PublishedDate,
		ISBN:          book.ISBN,
		CoverURL:      book.CoverURL,
		AgeInYears:    book.AgeInYears(),
		IsClassic:     book.IsClassic(),
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
	if author != nil {
		view.Author = NewAuthorView(author)
	}
	if publisher != nil {
		view.Publisher = NewPublisherView(publisher)
	}
	if genre != nil {
		view.Genre = NewGenreView(genre)
	}
	return view
}

func (s *BookService) cacheView(ctx context.Context, view *BookView) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, bookViewKey(view.ID), view, bookViewCacheTTL); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("book_id", view.ID).Warn("book view cache write failed")
	}
}

func (s *BookService) invalidateView(ctx context.Context, id uuid.UUID) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, bookViewKey(id)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("book_id", id).Warn("book view cache invalidation failed")
	}
}

// indexBook pushes the book document to Elasticsearch, best effort.
func (s *BookService) indexBook(ctx context.Context, b *entity.Book) {
	if s.ES == nil || s.ESBooksIndex == "" {
		return
	}
	doc := map[string]any{
		"id":             b.ID,
		"title":          b.Title,
		"description":    b.Description,
		"isbn":           b.ISBN,
		"published_date": b.PublishedDate.Format("2006-01-02"),
		"cover_url":      b.CoverURL,
		"updated_at":     b.UpdatedAt.Format(time.RFC3339Nano),
	}
	body, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESBooksIndex, DocumentID: b.ID.String(), Body: strings.NewReader(string(body)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("book_id", b.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("book_id", b.ID).Warn("es index response error")
	}
}

// SearchBooks performs a multi_match query on title and description.
func (s *BookService) SearchBooks(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESBooksIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	body, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESBooksIndex),
		s.ES.Search.WithBody(strings.NewReader(string(body))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
