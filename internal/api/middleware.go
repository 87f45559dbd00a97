package api

import (
	"time"

	"tabstat/domain/core"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request identifier in both directions
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// requestID reuses a client-supplied UUID or assigns a new one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = core.NewRequestID().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// accessLog writes one debug line per request
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("%s %s -> %d in %.2fms (request %s)", c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), float64(time.Since(start).Nanoseconds())/1e6, c.GetString(requestIDKey))
	}
}
