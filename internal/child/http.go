package child

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

// The historical route names use a naive plural, so the list route is
// /get_childs.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/get_childs", h.ListChildren)
	router.GET("/get_child/:id", h.GetChild)
	router.PUT("/update_child/:id", h.UpdateChild)
	router.DELETE("/delete_child/:id", h.DeleteChild)
}

func (h *Handler) ListChildren(c *gin.Context) {
	h.logger.InfoContext(c.Request.Context(), "fetching all children")

	count, children, err := h.service.ListChildren(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, 0)
		return
	}
	if children == nil {
		children = []Child{}
	}

	c.JSON(http.StatusOK, gin.H{"childs_count": count, "data": children})
}

func (h *Handler) GetChild(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid child id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "fetching child by ID", "id", id)
	child, err := h.service.GetChildByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": []Child{*child}})
}

func (h *Handler) UpdateChild(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid child id"})
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

	h.logger.InfoContext(c.Request.Context(), "updating child", "id", id, "name", req.Name)
	updated, err := h.service.UpdateChild(c.Request.Context(), &Child{
		ID:          id,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		ClassroomID: req.ClassroomID,
		DaycareID:   req.DaycareID,
	})
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "child updated successfully",
		"updated_data": updated,
	})
}

func (h *Handler) DeleteChild(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid child id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "deleting child", "id", id)
	if err := h.service.DeleteChild(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("child with id %d deleted", id),
	})
}

func (h *Handler) handleServiceError(c *gin.Context, err error, id int) {
	if errors.Is(err, ErrChildNotFound) {
		h.logger.InfoContext(c.Request.Context(), "child not found", "id", id)
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "not_found",
			"message": fmt.Sprintf("child with id %d not found", id),
		})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), "internal error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
}
