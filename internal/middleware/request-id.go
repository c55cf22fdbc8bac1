package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
)

// RequestID propagates the caller's request id or mints one, so failed
// predictions in the logs can be tied back to a request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ctxRequestID, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()
	}
}

// Logger returns a logrus entry tagged with the request id minted by
// RequestID, for handlers reporting failures mid-request.
func Logger(c *gin.Context) *log.Entry {
	return log.WithField(ctxRequestID, c.GetString(ctxRequestID))
}
