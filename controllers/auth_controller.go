package controllers

import (
	"net/http"

	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/services"
	"github.com/asher5712/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, userPayload(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userPayload(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	actor := utils.CurrentActor(c)
	user, err := a.Svc.Profile(actor.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, userPayload(user))
}
