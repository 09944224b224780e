package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-library-management/internal/application"
	"github.com/oksasatya/go-library-management/pkg/response"
	"github.com/oksasatya/go-library-management/pkg/validation"
)

type BookHandler struct {
	Svc    *app.BookService
	Logger *logrus.Logger
}

func NewBookHandler(svc *app.BookService, logger *logrus.Logger) *BookHandler {
	return &BookHandler{Svc: svc, Logger: logger}
}

type createBookRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	PublishedDate string `json:"published_date" binding:"required,dateonly"`
	ISBN          string `json:"isbn" binding:"required"`
	AuthorID      string `json:"author_id" binding:"required,uuid"`
	PublisherID   string `json:"publisher_id" binding:"required,uuid"`
	GenreID       string `json:"genre_id" binding:"required,uuid"`
}

func (h *BookHandler) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	published, _ := time.Parse("2006-01-02", req.PublishedDate)

	view, err := h.Svc.CreateBook(c.Request.Context(), app.CreateBookInput{
		Title:         req.Title,
		Description:   req.Description,
		PublishedDate: published,
		ISBN:          req.ISBN,
		AuthorID:      uuid.MustParse(req.AuthorID),
		PublisherID:   uuid.MustParse(req.PublisherID),
		GenreID:       uuid.MustParse(req.GenreID),
	})
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("create book failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusCreated, view, "book created", nil)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid book id", nil)
		return
	}
	view, err := h.Svc.GetBook(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).Error("get book failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if view == nil {
		response.Error[any](c, http.StatusNotFound, "book not found", nil)
		return
	}
	response.Success(c, http.StatusOK, view, "ok", nil)
}

func (h *BookHandler) List(c *gin.Context) {
	views, err := h.Svc.ListBooks(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list books failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, views, "ok", map[string]any{"count": len(views)})
}

func (h *BookHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size := 10
	if raw := c.Query("size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			size = n
		}
	}
	hits, err := h.Svc.SearchBooks(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("book search failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "ok", map[string]any{"count": len(hits)})
}

func (h *BookHandler) UploadCover(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid book id", nil)
		return
	}
	file, header, err := c.Request.FormFile("cover")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing cover file", nil)
		return
	}
	defer file.Close()

	url, err := h.Svc.UploadCover(c.Request.Context(), id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("cover upload failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusOK, map[string]string{"cover_url": url}, "cover uploaded", nil)
}
