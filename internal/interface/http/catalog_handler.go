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

// CatalogHandler serves the reference-data endpoints: authors, publishers,
// genres, and member registration.
type CatalogHandler struct {
	Svc    *app.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *app.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

type createAuthorRequest struct {
	Name      string `json:"name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required,dateonly"`
	DeathDate string `json:"death_date" binding:"omitempty,dateonly"`
}

type createPublisherRequest struct {
	Name    string `json:"name" binding:"required"`
	Website string `json:"website" binding:"required"`
}

type createGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

type createMemberRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required,dateonly"`
}

func (h *CatalogHandler) respond(c *gin.Context, view any, err error, created string) {
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("catalog operation failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	response.Success(c, http.StatusCreated, view, created, nil)
}

func (h *CatalogHandler) CreateAuthor(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	birth, _ := time.Parse("2006-01-02", req.BirthDate)
	var death *time.Time
	if req.DeathDate != "" {
		d, _ := time.Parse("2006-01-02", req.DeathDate)
		death = &d
	}
	view, err := h.Svc.CreateAuthor(c.Request.Context(), req.Name, birth, death)
	h.respond(c, view, err, "author created")
}

func (h *CatalogHandler) CreatePublisher(c *gin.Context) {
	var req createPublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	view, err := h.Svc.CreatePublisher(c.Request.Context(), req.Name, req.Website)
	h.respond(c, view, err, "publisher created")
}

func (h *CatalogHandler) CreateGenre(c *gin.Context) {
	var req createGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	view, err := h.Svc.CreateGenre(c.Request.Context(), req.Name)
	h.respond(c, view, err, "genre created")
}

func (h *CatalogHandler) CreateMember(c *gin.Context) {
	var req createMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	birth, _ := time.Parse("2006-01-02", req.BirthDate)
	view, err := h.Svc.CreateMember(c.Request.Context(), req.FirstName, req.LastName, birth)
	h.respond(c, view, err, "member created")
}

func (h *CatalogHandler) get(c *gin.Context, load func(uuid.UUID) (any, error), label string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid "+label+" id", nil)
		return
	}
	view, err := load(id)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.Logger.WithError(err).Error("catalog lookup failed")
		}
		response.Error[any](c, status, clientMessage(err, status), nil)
		return
	}
	if view == nil {
		response.Error[any](c, http.StatusNotFound, label+" not found", nil)
		return
	}
	response.Success(c, http.StatusOK, view, "ok", nil)
}

func (h *CatalogHandler) GetAuthor(c *gin.Context) {
	h.get(c, func(id uuid.UUID) (any, error) {
		v, err := h.Svc.GetAuthor(c.Request.Context(), id)
		if err != nil || v == nil {
			return nil, err
		}
		return v, nil
	}, "author")
}

func (h *CatalogHandler) GetPublisher(c *gin.Context) {
	h.get(c, func(id uuid.UUID) (any, error) {
		v, err := h.Svc.GetPublisher(c.Request.Context(), id)
		if err != nil || v == nil {
			return nil, err
		}
		return v, nil
	}, "publisher")
}

func (h *CatalogHandler) GetGenre(c *gin.Context) {
	h.get(c, func(id uuid.UUID) (any, error) {
		v, err := h.Svc.GetGenre(c.Request.Context(), id)
		if err != nil || v == nil {
			return nil, err
		}
		return v, nil
	}, "genre")
}

func (h *CatalogHandler) GetMember(c *gin.Context) {
	h.get(c, func(id uuid.UUID) (any, error) {
		v, err := h.Svc.GetMember(c.Request.Context(), id)
		if err != nil || v == nil {
			return nil, err
		}
		return v, nil
	}, "member")
}
