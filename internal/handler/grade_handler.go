package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/service"
	"schulhof.app/gradebook/pkg/apperror"
	"schulhof.app/gradebook/pkg/response"
)

type GradeHandler struct {
	service service.GradeService
}

func NewGradeHandler(service service.GradeService) *GradeHandler {
	return &GradeHandler{service: service}
}

func callerFromContext(c *gin.Context) (service.Caller, error) {
	username, err := response.GetUsername(c)
	if err != nil {
		return service.Caller{}, err
	}
	return service.Caller{Username: username, Roles: response.GetRoles(c)}, nil
}

func (h *GradeHandler) Find(c *gin.Context) {
	var filter dto.GradeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BindingError(c, err)
		return
	}
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BindingError(c, err)
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	grades, err := h.service.Find(c.Request.Context(), caller, filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, grades)
}

func (h *GradeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	caller, err := callerFromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	grade, err := h.service.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, grade)
}

func (h *GradeHandler) Create(c *gin.Context) {
	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	grade, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, grade)
}

func (h *GradeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	grade, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, grade)
}

func (h *GradeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SemesterResults returns the aggregated weighted grade results for one
// semester, optionally narrowed to a single student.
func (h *GradeHandler) SemesterResults(c *gin.Context) {
	semesterID, err := uuid.Parse(c.Param("semesterId"))
	if err != nil {
		response.Error(c, apperror.Validation("semester id must be a valid UUID"))
		return
	}

	var studentID *uuid.UUID
	if raw := c.Query("student_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("student id must be a valid UUID"))
			return
		}
		studentID = &parsed
	}

	results, err := h.service.SemesterResults(c.Request.Context(), semesterID, studentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
