package handlers

import (
	"net/http"
	"strings"

	"mecanica_jobs/internal/domain/entities"
	"mecanica_jobs/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderActorID       = "X-Actor-Id"
	HeaderActorRole     = "X-Actor-Role"
	HeaderSubmissionKey = "X-Submission-Key"

	actorContextKey = "actor"
)

var errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "X-Actor-Id header is required", http.StatusUnauthorized)

// RequireActor rejects requests without an actor id and stores the actor on the context.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := actorFromHeaders(c)
		if actor.ID == "" {
			c.AbortWithStatusJSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// currentActor returns the actor set by RequireActor, or one read from the
// headers on routes that do not require it.
func currentActor(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if a, ok := v.(entities.Actor); ok {
			return a
		}
	}
	return actorFromHeaders(c)
}

func actorFromHeaders(c *gin.Context) entities.Actor {
	return entities.Actor{
		ID:   strings.TrimSpace(c.GetHeader(HeaderActorID)),
		Role: entities.ParseRole(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole)))),
	}
}
