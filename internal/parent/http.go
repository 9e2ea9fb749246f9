package parent

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"daycare-service/internal/httputil"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: httputil.NewValidator(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/get_parents", h.ListParents)
	router.GET("/get_parent/:id", h.GetParent)
	router.PUT("/update_parent/:id", h.UpdateParent)
	router.DELETE("/delete_parent/:id", h.DeleteParent)
}

func (h *Handler) ListParents(c *gin.Context) {
	h.logger.InfoContext(c.Request.Context(), "fetching all parents")

	count, parents, err := h.service.ListParents(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, 0)
		return
	}
	if parents == nil {
		parents = []Parent{}
	}

	c.JSON(http.StatusOK, gin.H{"parents_count": count, "data": parents})
}

func (h *Handler) GetParent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid parent id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "fetching parent by ID", "id", id)
	parent, err := h.service.GetParentByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": []Parent{*parent}})
}

func (h *Handler) UpdateParent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid parent id"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": httputil.MissingFieldsMessage(err)})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "updating parent", "id", id, "name", req.Name)
	updated, err := h.service.UpdateParent(c.Request.Context(), &Parent{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "parent updated successfully",
		"updated_data": updated,
	})
}

func (h *Handler) DeleteParent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid parent id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "deleting parent", "id", id)
	if err := h.service.DeleteParent(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("parent with id %d deleted", id),
	})
}

func (h *Handler) handleServiceError(c *gin.Context, err error, id int) {
	if errors.Is(err, ErrParentNotFound) {
		h.logger.InfoContext(c.Request.Context(), "parent not found", "id", id)
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "not_found",
			"message": fmt.Sprintf("parent with id %d not found", id),
		})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), "internal error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
}
