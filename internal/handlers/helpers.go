package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplecrm/internal/authz"
	"simplecrm/internal/middleware"
	"simplecrm/internal/services"
)

func getActor(c *gin.Context) (authz.Actor, bool) {
	v, ok := c.Get(middleware.ActorKey)
	if !ok {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}

// respondServiceError мапит сентинелы сервисов на HTTP-статусы.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidAgent),
		errors.Is(err, services.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, authz.ErrMissingAgentProfile):
		// нарушение предусловия, наружу деталей не даём
		log.Printf("handlers: precondition violation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
