package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/service"
	"schulhof.app/gradebook/pkg/response"
)

type SemesterSubjectHandler struct {
	service service.SemesterSubjectService
}

func NewSemesterSubjectHandler(service service.SemesterSubjectService) *SemesterSubjectHandler {
	return &SemesterSubjectHandler{service: service}
}

func (h *SemesterSubjectHandler) GetAll(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BindingError(c, err)
		return
	}

	semesterSubjects, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, semesterSubjects)
}

func (h *SemesterSubjectHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	semesterSubject, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, semesterSubject)
}

func (h *SemesterSubjectHandler) Create(c *gin.Context) {
	var req dto.SemesterSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	semesterSubject, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, semesterSubject)
}

func (h *SemesterSubjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.SemesterSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	semesterSubject, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, semesterSubject)
}

func (h *SemesterSubjectHandler) Delete(c *gin.Context) {
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
