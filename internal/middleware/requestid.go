package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, reusing the client's when present,
// so a response can be matched to its server log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the ID assigned by RequestID, empty if the middleware
// did not run.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get("requestID")
	s, _ := id.(string)
	return s
}
