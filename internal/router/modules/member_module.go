package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-library-management/internal/container"
	handlers "github.com/oksasatya/go-library-management/internal/interface/http"
	"github.com/oksasatya/go-library-management/internal/interface/middleware"
)

// MemberModule wires the member-scoped reporting routes.
// GET /api/members/:id/borrowing, GET /api/members/:id/borrowed-books,
// GET /api/members/:id/active-books
type MemberModule struct {
	Handler *handlers.MemberHandler
}

func NewMemberModule(h *handlers.MemberHandler) *MemberModule {
	return &MemberModule{Handler: h}
}

func (m *MemberModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByMemberID(), middleware.AllowPrivateIP())

	rg.GET("/members/:id/borrowing", readLimiter, m.Handler.BorrowingStats)
	rg.GET("/members/:id/borrowed-books", readLimiter, m.Handler.BorrowedBooks)
	rg.GET("/members/:id/active-books", readLimiter, m.Handler.ActiveBooks)
}
