package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-library-management/internal/container"
	handlers "github.com/oksasatya/go-library-management/internal/interface/http"
	"github.com/oksasatya/go-library-management/internal/interface/middleware"
)

// BorrowingModule wires the loan lifecycle routes.
// POST /api/borrowings, GET /api/borrowings/:id,
// POST /api/borrowings/:id/return, POST /api/borrowings/:id/renew
type BorrowingModule struct {
	Handler *handlers.BorrowingHandler
}

func NewBorrowingModule(h *handlers.BorrowingHandler) *BorrowingModule {
	return &BorrowingModule{Handler: h}
}

func (m *BorrowingModule) Register(rg *gin.RouterGroup) {
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/borrowings", writeLimiter, m.Handler.Borrow)
	rg.GET("/borrowings/:id", readLimiter, m.Handler.Get)
	rg.POST("/borrowings/:id/return", writeLimiter, m.Handler.Return)
	rg.POST("/borrowings/:id/renew", writeLimiter, m.Handler.Renew)
}
