package controllers

import (
	"strconv"

	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/repository"
	"github.com/asher5712/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu-items?category=&featured=&ordering=price
func (h *MenuController) List(c *gin.Context) {
	filter := repository.MenuFilter{
		CategoryTitle: c.Query("category"),
		OrderByPrice:  c.Query("ordering") == "price",
	}
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "invalid featured filter")
			return
		}
		filter.Featured = &featured
	}

	items, err := h.Svc.List(filter)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu-items
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /menu-items/:id
func (h *MenuController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.Svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT/PATCH /menu-items/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.Update(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
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
