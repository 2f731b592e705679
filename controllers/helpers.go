package controllers

import (
	"errors"
	"strconv"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/services"

	"github.com/gin-gonic/gin"
)

// fail maps service sentinels onto the HTTP error taxonomy in one place.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// userPayload is the public shape of a user across group and auth responses.
func userPayload(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "username": u.Username, "email": u.Email}
}

func userPayloads(users []entity.User) []gin.H {
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userPayload(&users[i]))
	}
	return out
}
