package controllers

import (
	"strconv"
	"time"

	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/repository"
	"github.com/asher5712/LittleLemonAPI/services"
	"github.com/asher5712/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders?status=&date= with role-dependent visibility.
func (h *OrderController) List(c *gin.Context) {
	actor := utils.CurrentActor(c)

	var filter repository.OrderFilter
	if v := c.Query("status"); v != "" {
		status, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "invalid status filter")
			return
		}
		filter.Status = &status
	}
	if v := c.Query("date"); v != "" {
		date, err := time.ParseInLocation("2006-01-02", v, time.UTC)
		if err != nil {
			resp.BadRequest(c, "invalid date filter, want YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	orders, err := h.Svc.List(actor, filter)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /orders runs checkout. An empty cart is a no-content success.
func (h *OrderController) Checkout(c *gin.Context) {
	actor := utils.CurrentActor(c)

	order, err := h.Svc.Checkout(actor.ID)
	if err != nil {
		fail(c, err)
		return
	}
	if order == nil {
		resp.NoContent(c)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.Svc.Get(utils.CurrentActor(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH/PUT /orders/:id accepts delivery crew assignment and status only.
func (h *OrderController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch services.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Update(utils.CurrentActor(c), id, &patch)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(utils.CurrentActor(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.NoContent(c)
}
