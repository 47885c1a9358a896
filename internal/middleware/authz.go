package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/authz"
)

// RequireOrganizer закрывает группу роутов от агентов.
func RequireOrganizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ActorKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no actor in context"})
			return
		}
		actor, _ := v.(authz.Actor)
		if !actor.IsOrganizer() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
