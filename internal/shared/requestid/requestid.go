// Package requestid attaches a unique identifier to each HTTP request so
// log lines from the same request can be correlated.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKey is the gin context key under which the request ID is stored.
const ContextKey = "requestID"

// HeaderName is the response header carrying the request ID.
const HeaderName = "X-Request-ID"

// New returns a Gin middleware that assigns a request ID to every request.
// An incoming X-Request-ID header is reused so IDs survive proxies.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKey, id)
		c.Header(HeaderName, id)
		c.Next()
	}
}

// FromContext returns the request ID stored by the middleware, or an empty
// string when none is present.
func FromContext(c *gin.Context) string {
	id, _ := c.Value(ContextKey).(string)
	return id
}
