package controllers

import (
	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/services"
	"github.com/asher5712/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart/menu-items returns the caller's own lines, never anyone else's.
func (h *CartController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)
	lines, err := h.Svc.List(actor.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, lines)
}

// POST /cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	actor := utils.CurrentActor(c)

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(actor.ID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /cart/menu-items flushes everything and reports the count.
func (h *CartController) Flush(c *gin.Context) {
	actor := utils.CurrentActor(c)
	deleted, err := h.Svc.Flush(actor.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": deleted})
}
