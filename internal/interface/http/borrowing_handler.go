package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-library-management/internal/application"
	"github.com/oksasatya/go-library-management/pkg/response"
	"github.com/oksasatya/go-library-management/pkg/validation"
)

type BorrowingHandler struct {
	Svc    *app.BorrowingService
	Logger *logrus.Logger
}

func NewBorrowingHandler(svc *app.BorrowingService, logger *logrus.Logger) *BorrowingHandler {
	return &BorrowingHandler{Svc: svc, Logger: logger}
}

type borrowBookRequest struct {
	MemberID      string `json:"member_id" binding:"required,uuid"`
	BookID        string `json:"book_id" binding:"required,uuid"`
	BorrowingDate string `json:"borrowing_date" binding:"omitempty,dateonly"`
}

type returnBookRequest struct {
	ReturningDate string `json:"returning_date" binding:"omitempty,dateonly"`
}

func (h *BorrowingHandler) Borrow(c *gin.Context) {
	var req borrowBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := app.BorrowBookInput{
		MemberID: uuid.MustParse(req.MemberID),
		BookID:   uuid.MustParse(req.BookID),
	}
	if req.BorrowingDate != "" {
		d, _ := time.Parse("2006-01-02", req.BorrowingDate)
		in.BorrowingDate = &d
	}

	view, err := h.Svc.BorrowBook(c.Request.Context(), in)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("borrow book failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusCreated, view, "book borrowed", nil)
}

func (h *BorrowingHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid borrowing id", nil)
		return
	}
	var req returnBookRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	var returned *time.Time
	if req.ReturningDate != "" {
		d, _ := time.Parse("2006-01-02", req.ReturningDate)
		returned = &d
	}

	view, err := h.Svc.ReturnBook(c.Request.Context(), id, returned)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("return book failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusOK, view, "book returned", nil)
}

func (h *BorrowingHandler) Renew(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid borrowing id", nil)
		return
	}
	view, err := h.Svc.RenewBorrowing(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("renew borrowing failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusOK, view, "borrowing renewed", nil)
}

func (h *BorrowingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid borrowing id", nil)
		return
	}
	view, err := h.Svc.GetBorrowing(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).Error("get borrowing failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if view == nil {
		response.Error[any](c, http.StatusNotFound, "borrowing not found", nil)
		return
	}
	response.Success(c, http.StatusOK, view, "ok", nil)
}
