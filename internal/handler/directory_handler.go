package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-eval-api/internal/models"
	appErrors "github.com/noah-isme/teacher-eval-api/pkg/errors"
	"github.com/noah-isme/teacher-eval-api/pkg/response"
)

type directoryService interface {
	Classes(ctx context.Context) []string
	TeachersByClass(ctx context.Context, className string) []models.Teacher
	AllTeachers(ctx context.Context) []models.Teacher
}

// DirectoryHandler exposes the class and teacher directory.
type DirectoryHandler struct {
	directory directoryService
}

// NewDirectoryHandler constructs the handler.
func NewDirectoryHandler(directory directoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Classes godoc
// @Summary List classes
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *DirectoryHandler) Classes(c *gin.Context) {
	classes := h.directory.Classes(c.Request.Context())
	if requestDone(c) {
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// ClassTeachers godoc
// @Summary List teachers assigned to a class
// @Tags Directory
// @Produce json
// @Param className path string true "Class name"
// @Success 200 {object} response.Envelope
// @Router /classes/{className}/teachers [get]
func (h *DirectoryHandler) ClassTeachers(c *gin.Context) {
	className := strings.TrimSpace(c.Param("className"))
	if className == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "className is required"))
		return
	}
	teachers := h.directory.TeachersByClass(c.Request.Context(), className)
	if requestDone(c) {
		return
	}
	response.JSON(c, http.StatusOK, teachers, map[string]interface{}{"className": className, "count": len(teachers)})
}

// Teachers godoc
// @Summary List all teachers
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *DirectoryHandler) Teachers(c *gin.Context) {
	teachers := h.directory.AllTeachers(c.Request.Context())
	if requestDone(c) {
		return
	}
	response.JSON(c, http.StatusOK, teachers, map[string]interface{}{"count": len(teachers)})
}
