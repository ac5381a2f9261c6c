package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"greentech.xyz/greenhouse-monitor-service/pkg/auth"
	"greentech.xyz/greenhouse-monitor-service/pkg/greenhouse"
	"greentech.xyz/greenhouse-monitor-service/pkg/metrics"
)

const contextKeyActor = "actor"

// AuthRequired validates the Bearer token and injects the acting
// employee's identity into the request context as a greenhouse.Actor.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(contextKeyActor, greenhouse.Actor{
			EmployeeID:   claims.EmployeeID,
			IsAdmin:      claims.IsAdmin,
			GreenhouseID: claims.GreenhouseID,
		})
		c.Next()
	}
}

func actorFromContext(c *gin.Context) greenhouse.Actor {
	if v, exists := c.Get(contextKeyActor); exists {
		if actor, ok := v.(greenhouse.Actor); ok {
			return actor
		}
	}
	return greenhouse.Actor{}
}

// TrackRequests records request count and duration per endpoint.
func TrackRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.TrackRequest(endpoint, c.Request.Method, strconv.Itoa(c.Writer.Status()), started)
	}
}
