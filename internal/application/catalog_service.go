package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-library-management/internal/domain/entity"
	repo "github.com/oksasatya/go-library-management/internal/domain/repository"
)

// CatalogService creates and reads the supporting catalog entities: authors,
// publishers, genres, and members. Simple single-repository operations, no
// unit of work required.
type CatalogService struct {
	Authors    repo.AuthorRepository
	Publishers repo.PublisherRepository
	Genres     repo.GenreRepository
	Members    repo.MemberRepository
	Logger     *logrus.Logger
}

func NewCatalogService(
	authors repo.AuthorRepository,
	publishers repo.PublisherRepository,
	genres repo.GenreRepository,
	members repo.MemberRepository,
	logger *logrus.Logger,
) *CatalogService {
	return &CatalogService{Authors: authors, Publishers: publishers, Genres: genres, Members: members, Logger: logger}
}

func (s *CatalogService) CreateAuthor(ctx context.Context, name string, birthDate time.Time, deathDate *time.Time) (*AuthorView, error) {
	author, err := entity.NewAuthor(name, birthDate, deathDate)
	if err != nil {
		return nil, err
	}
	saved, err := s.Authors.Save(ctx, author)
	if err != nil {
		return nil, err
	}
	return NewAuthorView(saved), nil
}

func (s *CatalogService) GetAuthor(ctx context.Context, id uuid.UUID) (*AuthorView, error) {
	author, err := s.Authors.FindByID(ctx, id)
	if err != nil || author == nil {
		return nil, err
	}
	return NewAuthorView(author), nil
}

func (s *CatalogService) CreatePublisher(ctx context.Context, name, website string) (*PublisherView, error) {
	publisher, err := entity.NewPublisher(name, website)
	if err != nil {
		return nil, err
	}
	saved, err := s.Publishers.Save(ctx, publisher)
	if err != nil {
		return nil, err
	}
	return NewPublisherView(saved), nil
}

func (s *CatalogService) GetPublisher(ctx context.Context, id uuid.UUID) (*PublisherView, error) {
	publisher, err := s.Publishers.FindByID(ctx, id)
	if err != nil || publisher == nil {
		return nil, err
	}
	return NewPublisherView(publisher), nil
}

func (s *CatalogService) CreateGenre(ctx context.Context, name string) (*GenreView, error) {
	genre, err := entity.NewGenre(name)
	if err != nil {
		return nil, err
	}
	saved, err := s.Genres.Save(ctx, genre)
	if err != nil {
		return nil, err
	}
	return NewGenreView(saved), nil
}

func (s *CatalogService) GetGenre(ctx context.Context, id uuid.UUID) (*GenreView, error) {
	genre, err := s.Genres.FindByID(ctx, id)
	if err != nil || genre == nil {
		return nil, err
	}
	return NewGenreView(genre), nil
}

func (s *CatalogService) CreateMember(ctx context.Context, firstName, lastName string, birthDate time.Time) (*MemberView, error) {
	member, err := entity.NewMember(firstName, lastName, birthDate)
	if err != nil {
		return nil, err
	}
	saved, err := s.Members.Save(ctx, member)
	if err != nil {
		return nil, err
	}
	return NewMemberView(saved), nil
}

func (s *CatalogService) GetMember(ctx context.Context, id uuid.UUID) (*MemberView, error) {
	member, err := s.Members.FindByID(ctx, id)
	if err != nil || member == nil {
		return nil, err
	}
	return NewMemberView(member), nil
}
