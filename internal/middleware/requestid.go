package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"smart-task-scheduler/pkg/log"
)

// HeaderRequestID carries the request id in and out of the API.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID tags the request context with an id so every log line of the
// request carries request_id. A client supplied id is reused when sane.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
