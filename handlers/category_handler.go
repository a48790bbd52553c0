package handlers

import (
	"strconv"

	"blogapi/helper"
	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Category created successfully", category)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	category, err := h.categoryService.GetCategory(uint(id))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", category)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", categories)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.categoryService.UpdateCategory(uint(id), req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.categoryService.DeleteCategory(uint(id)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
