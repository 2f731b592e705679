package controllers

import (
	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
)

// GroupController serves both staff groups; routes bind each handler to a
// concrete role, so there is no group-name string to mistype at runtime.
type GroupController struct{ Svc *services.GroupService }

func NewGroupController(s *services.GroupService) *GroupController { return &GroupController{Svc: s} }

// GET /groups/{group}/users
func (g *GroupController) List(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := g.Svc.Members(role)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, userPayloads(users))
	}
}

// POST /groups/{group}/users: 201 on add, 226 when already a member.
func (g *GroupController) Add(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}

		user, already, err := g.Svc.Add(role, req.Username)
		if err != nil {
			fail(c, err)
			return
		}
		if already {
			resp.AlreadyPresent(c, userPayload(user))
			return
		}
		resp.Created(c, userPayload(user))
	}
}

// DELETE /groups/{group}/users/:id is idempotent, 204 either way.
func (g *GroupController) Remove(role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := g.Svc.Remove(role, id); err != nil {
			fail(c, err)
			return
		}
		resp.NoContent(c)
	}
}
