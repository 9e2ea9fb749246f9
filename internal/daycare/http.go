package daycare

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
	router.GET("/get_daycares", h.ListDaycares)
	router.GET("/get_daycare/:id", h.GetDaycare)
	router.PUT("/update_daycare/:id", h.UpdateDaycare)
	router.DELETE("/delete_daycare/:id", h.DeleteDaycare)
}

func (h *Handler) ListDaycares(c *gin.Context) {
	h.logger.InfoContext(c.Request.Context(), "fetching all daycares")

	count, daycares, err := h.service.ListDaycares(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, 0)
		return
	}
	if daycares == nil {
		daycares = []Daycare{}
	}

	c.JSON(http.StatusOK, gin.H{"daycares_count": count, "data": daycares})
}

func (h *Handler) GetDaycare(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid daycare id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "fetching daycare by ID", "id", id)
	daycare, err := h.service.GetDaycareByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": []Daycare{*daycare}})
}

func (h *Handler) UpdateDaycare(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid daycare id"})
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

	h.logger.InfoContext(c.Request.Context(), "updating daycare", "id", id, "name", req.Name)
	updated, err := h.service.UpdateDaycare(c.Request.Context(), &Daycare{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "daycare updated successfully",
		"updated_data": updated,
	})
}

func (h *Handler) DeleteDaycare(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid daycare id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "deleting daycare", "id", id)
	if err := h.service.DeleteDaycare(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("daycare with id %d deleted", id),
	})
}

func (h *Handler) handleServiceError(c *gin.Context, err error, id int) {
	if errors.Is(err, ErrDaycareNotFound) {
		h.logger.InfoContext(c.Request.Context(), "daycare not found", "id", id)
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "not_found",
			"message": fmt.Sprintf("daycare with id %d not found", id),
		})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), "internal error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
}
