package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-library-management/internal/application"
	"github.com/oksasatya/go-library-management/pkg/response"
)

type MemberHandler struct {
	Svc    *app.MemberService
	Logger *logrus.Logger
}

func NewMemberHandler(svc *app.MemberService, logger *logrus.Logger) *MemberHandler {
	return &MemberHandler{Svc: svc, Logger: logger}
}

func (h *MemberHandler) memberID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid member id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *MemberHandler) BorrowingStats(c *gin.Context) {
	id, ok := h.memberID(c)
	if !ok {
		return
	}
	stats, err := h.Svc.GetBorrowingStats(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("member stats failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusOK, stats, "ok", nil)
}

func (h *MemberHandler) BorrowedBooks(c *gin.Context) {
	id, ok := h.memberID(c)
	if !ok {
		return
	}
	books, err := h.Svc.GetBorrowedBooks(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("member borrowed books failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusOK, books, "ok", map[string]any{"count": len(books)})
}

func (h *MemberHandler) ActiveBooks(c *gin.Context) {
	id, ok := h.memberID(c)
	if !ok {
		return
	}
	books, err := h.Svc.GetActiveBooks(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("member active books failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusOK, books, "ok", map[string]any{"count": len(books)})
}
