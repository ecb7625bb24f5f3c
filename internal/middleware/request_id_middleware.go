package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"egramseva-backend/pkg/logger"
)

// RequestIDHeader carries the correlation id between the editor frontend
// and this service. A caller-supplied id is honoured so one editing
// session traces across both.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, echoes it on the
// response, and attaches it as a log field on the request context so the
// services' log lines carry it.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logger.ContextWithFields(c.Request.Context(), map[string]interface{}{
			"request_id": requestID,
		}))
		c.Next()
	}
}
