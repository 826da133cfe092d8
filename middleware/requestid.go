package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// validRequestID accepts ids a client may reasonably supply
var validRequestID = regexp.MustCompile(`^[a-zA-Z0-9-]{1,64}$`)

// RequestID reuses a well-formed incoming X-Request-ID or generates a UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "" if none
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
