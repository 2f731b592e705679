package middlewares

import (
	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
)

// Gate decides allow/deny for an already-resolved caller. Gates are pure, so
// the route table in routes.RegisterRoutes is the whole authorization policy.
type Gate func(entity.Actor) bool

func ManagerOnly(a entity.Actor) bool { return a.IsManager() }

func ManagerOrCrew(a entity.Actor) bool { return a.IsManager() || a.IsCrew() }

// CustomerOnly excludes staff: managers and crew do not place orders.
func CustomerOnly(a entity.Actor) bool { return a.IsCustomer() }

func Require(gate Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate(utils.CurrentActor(c)) {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
