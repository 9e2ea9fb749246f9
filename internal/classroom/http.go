package classroom

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
	router.GET("/get_classrooms", h.ListClassrooms)
	router.GET("/get_classroom/:id", h.GetClassroom)
	router.PUT("/update_classroom/:id", h.UpdateClassroom)
	router.DELETE("/delete_classroom/:id", h.DeleteClassroom)
}

func (h *Handler) ListClassrooms(c *gin.Context) {
	h.logger.InfoContext(c.Request.Context(), "fetching all classrooms")

	count, classrooms, err := h.service.ListClassrooms(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, 0)
		return
	}
	if classrooms == nil {
		classrooms = []Classroom{}
	}

	c.JSON(http.StatusOK, gin.H{"classrooms_count": count, "data": classrooms})
}

func (h *Handler) GetClassroom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid classroom id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "fetching classroom by ID", "id", id)
	classroom, err := h.service.GetClassroomByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": []Classroom{*classroom}})
}

func (h *Handler) UpdateClassroom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid classroom id"})
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

	h.logger.InfoContext(c.Request.Context(), "updating classroom", "id", id, "name", req.Name)
	updated, err := h.service.UpdateClassroom(c.Request.Context(), &Classroom{
		ID:        id,
		Name:      req.Name,
		DaycareID: req.DaycareID,
	})
	if err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "classroom updated successfully",
		"updated_data": updated,
	})
}

func (h *Handler) DeleteClassroom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid classroom id"})
		return
	}

	h.logger.InfoContext(c.Request.Context(), "deleting classroom", "id", id)
	if err := h.service.DeleteClassroom(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": fmt.Sprintf("classroom with id %d deleted", id),
	})
}

func (h *Handler) handleServiceError(c *gin.Context, err error, id int) {
	if errors.Is(err, ErrClassroomNotFound) {
		h.logger.InfoContext(c.Request.Context(), "classroom not found", "id", id)
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "not_found",
			"message": fmt.Sprintf("classroom with id %d not found", id),
		})
		return
	}
	h.logger.ErrorContext(c.Request.Context(), "internal error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
}
