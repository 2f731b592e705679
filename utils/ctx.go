package utils

import (
	"github.com/asher5712/LittleLemonAPI/entity"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

func SetActor(c *gin.Context, a entity.Actor) {
	c.Set(actorKey, a)
}

// CurrentActor returns the zero Actor for anonymous requests.
func CurrentActor(c *gin.Context) entity.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(entity.Actor); ok {
			return a
		}
	}
	return entity.Actor{}
}
