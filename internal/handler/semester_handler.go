package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/service"
	"schulhof.app/gradebook/pkg/response"
)

type SemesterHandler struct {
	service service.SemesterService
}

func NewSemesterHandler(service service.SemesterService) *SemesterHandler {
	return &SemesterHandler{service: service}
}

func (h *SemesterHandler) GetAll(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BindingError(c, err)
		return
	}

	semesters, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, semesters)
}

func (h *SemesterHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	semester, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, semester)
}

func (h *SemesterHandler) Create(c *gin.Context) {
	var req dto.SemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	semester, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, semester)
}

func (h *SemesterHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.SemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	semester, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, semester)
}

func (h *SemesterHandler) Delete(c *gin.Context) {
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
