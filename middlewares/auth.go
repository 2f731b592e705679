package middlewares

import (
	"errors"
	"strings"

	"github.com/asher5712/LittleLemonAPI/entity"
	"github.com/asher5712/LittleLemonAPI/pkg/resp"
	"github.com/asher5712/LittleLemonAPI/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	errMissingToken = errors.New("missing or invalid token")
	errUnknownUser  = errors.New("unknown user")
)

// AuthRequired rejects requests without a valid Bearer token. Role
// memberships are loaded from the store on every request, not from the token.
func AuthRequired(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorFromRequest(c, db, secret)
		if err != nil {
			resp.Unauthorized(c, err.Error())
			c.Abort()
			return
		}
		utils.SetActor(c, actor)
		c.Next()
	}
}

// AuthOptional resolves the caller when a token is present and lets anonymous
// requests through with the zero Actor. Used on open-read endpoints.
func AuthOptional(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h := c.GetHeader("Authorization"); h != "" {
			if actor, err := actorFromRequest(c, db, secret); err == nil {
				utils.SetActor(c, actor)
			}
		}
		c.Next()
	}
}

func actorFromRequest(c *gin.Context, db *gorm.DB, secret string) (entity.Actor, error) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return entity.Actor{}, errMissingToken
	}

	userID, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
	if err != nil {
		return entity.Actor{}, err
	}

	var user entity.User
	if err := db.Preload("Roles").First(&user, userID).Error; err != nil {
		return entity.Actor{}, errUnknownUser
	}

	roles := make([]entity.Role, 0, len(user.Roles))
	for _, m := range user.Roles {
		roles = append(roles, m.Role)
	}
	return entity.Actor{ID: user.ID, Roles: roles}, nil
}
