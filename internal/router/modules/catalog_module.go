package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-library-management/internal/container"
	handlers "github.com/oksasatya/go-library-management/internal/interface/http"
	"github.com/oksasatya/go-library-management/internal/interface/middleware"
)

// CatalogModule wires the reference-data routes: authors, publishers,
// genres, and member registration.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/authors", writeLimiter, m.Handler.CreateAuthor)
	rg.GET("/authors/:id", readLimiter, m.Handler.GetAuthor)

	rg.POST("/publishers", writeLimiter, m.Handler.CreatePublisher)
	rg.GET("/publishers/:id", readLimiter, m.Handler.GetPublisher)

	rg.POST("/genres", writeLimiter, m.Handler.CreateGenre)
	rg.GET("/genres/:id", readLimiter, m.Handler.GetGenre)

	rg.POST("/members", writeLimiter, m.Handler.CreateMember)
	rg.GET("/members/:id", readLimiter, m.Handler.GetMember)
}
