package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schulhof.app/gradebook/internal/dto"
	"schulhof.app/gradebook/internal/service"
	"schulhof.app/gradebook/pkg/response"
)

type SchoolClassHandler struct {
	service service.SchoolClassService
}

func NewSchoolClassHandler(service service.SchoolClassService) *SchoolClassHandler {
	return &SchoolClassHandler{service: service}
}

func (h *SchoolClassHandler) GetAll(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BindingError(c, err)
		return
	}

	classes, err := h.service.GetAll(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

func (h *SchoolClassHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	schoolClass, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, schoolClass)
}

func (h *SchoolClassHandler) Create(c *gin.Context) {
	var req dto.SchoolClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	schoolClass, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, schoolClass)
}

func (h *SchoolClassHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.SchoolClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	schoolClass, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, schoolClass)
}

func (h *SchoolClassHandler) Delete(c *gin.Context) {
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
