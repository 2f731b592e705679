package controllers

import (
	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	categories, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := h.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, category)
}

// GET /categories/:id
func (h *CategoryController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	category, err := h.Svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, category)
}

// PUT/PATCH /categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	category, err := h.Svc.Update(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, category)
}

// DELETE /categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
