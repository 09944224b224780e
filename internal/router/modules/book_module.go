package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-library-management/internal/container"
	handlers "github.com/oksasatya/go-library-management/internal/interface/http"
	"github.com/oksasatya/go-library-management/internal/interface/middleware"
)

// BookModule wires the catalog book routes.
// POST /api/books, GET /api/books, GET /api/books/search,
// GET /api/books/:id, POST /api/books/:id/cover
type BookModule struct {
	Handler *handlers.BookHandler
}

func NewBookModule(h *handlers.BookHandler) *BookModule {
	return &BookModule{Handler: h}
}

func (m *BookModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/books", writeLimiter, m.Handler.Create)
	rg.GET("/books", readLimiter, m.Handler.List)
	rg.GET("/books/search", readLimiter, m.Handler.Search)
	rg.GET("/books/:id", readLimiter, m.Handler.Get)
	rg.POST("/books/:id/cover", writeLimiter, m.Handler.UploadCover)
}
