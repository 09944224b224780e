package router

import (
	app "github.com/oksasatya/go-library-management/internal/application"
	"github.com/oksasatya/go-library-management/internal/container"
	pginfra "github.com/oksasatya/go-library-management/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-library-management/internal/interface/http"
	"github.com/oksasatya/go-library-management/internal/router/modules"
)

type LibraryDeps struct {
	Books      *app.BookService
	Borrowings *app.BorrowingService
	Members    *app.MemberService
	Catalog    *app.CatalogService
}

func buildLibraryDeps() LibraryDeps {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	logger := container.GetLogger()

	authors := pginfra.NewAuthorRepository(pool)
	publishers := pginfra.NewPublisherRepository(pool)
	genres := pginfra.NewGenreRepository(pool)
	books := pginfra.NewBookRepository(pool)
	members := pginfra.NewMemberRepository(pool)
	borrowings := pginfra.NewBorrowingRepository(pool)
	uow := pginfra.NewUnitOfWork(pool)

	bookSvc := app.NewBookService(
		books,
		authors,
		publishers,
		genres,
		uow,
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESBooksIndex,
		container.GetGCS(),
		cfg.GCSBucket,
	)

	var events app.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}
	borrowSvc := app.NewBorrowingService(members, books, borrowings, uow, events, logger)
	memberSvc := app.NewMemberService(members, borrowings, books, logger)
	catalogSvc := app.NewCatalogService(authors, publishers, genres, members, logger)

	return LibraryDeps{
		Books:      bookSvc,
		Borrowings: borrowSvc,
		Members:    memberSvc,
		Catalog:    catalogSvc,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildLibraryDeps()
	logger := container.GetLogger()

	r.Add(modules.NewBookModule(handlers.NewBookHandler(deps.Books, logger)))
	r.Add(modules.NewBorrowingModule(handlers.NewBorrowingHandler(deps.Borrowings, logger)))
	r.Add(modules.NewMemberModule(handlers.NewMemberHandler(deps.Members, logger)))
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(deps.Catalog, logger)))
	if container.GetConfig().EnableDebugVars {
		r.Add(modules.NewDebugModule())
	}
}
