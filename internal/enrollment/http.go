package enrollment

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
	router.GET("/get_enrollments", h.ListEnrollments)
	router.GET("/get_enrollment/:id", h.GetEnrollment)
	router.PUT("/update_enrollment/:id", h.UpdateEnrollment)
	router.DELETE("/delete_enrollment/:id", h.DeleteEnrollment)
}

func (h *Handler) ListEnrollments(c *gin.Context) {
	h.logger.InfoContext(c.Request.Context(), "fetching all enrollments")

	count, enrollments, err := h.service.ListEnrollments(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, 0)
		return
	}
	if enrollments == nil {
		enrollments = []Enrollment{}
	}

	c.JSON(http.StatusOK, gin.H{"enrollments_count": count, "data": enrollments})
}

func (h *Handler) GetEnrollment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid enrollment id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "fetching enrollment by ID", "id", id)
	enrollment, err := h.service.GetEnrollmentByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": []Enrollment{*enrollment}})
}

func (h *Handler) UpdateEnrollment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid enrollment id"})
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

	h.logger.InfoContext(c.Request.Context(), "updating enrollment", "id", id)
	updated, err := h.service.UpdateEnrollment(c.Request.Context(), &Enrollment{
		ID:       id,
		ChildID:  req.ChildID,
		ParentID: req.ParentID,
	})
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "enrollment updated successfully",
		"updated_data": updated,
	})
}

func (h *Handler) DeleteEnrollment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid enrollment id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "deleting enrollment", "id", id)
	if err := h.service.DeleteEnrollment(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("enrollment with id %d deleted", id),
	})
}

func (h *Handler) handleServiceError(c *gin.Context, err error, id int) {
	if errors.Is(err, ErrEnrollmentNotFound) {
		h.logger.InfoContext(c.Request.Context(), "enrollment not found", "id", id)
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "not_found",
			"message": fmt.Sprintf("enrollment with id %d not found", id),
		})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), "internal error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
}
