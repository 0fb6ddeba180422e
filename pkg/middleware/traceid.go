package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TraceHeader     = "X-Trace-ID"
	ContextTraceID  = "trace_id"
	maxTraceIDBytes = 64
)

// TraceIDMiddleware keeps a caller-supplied trace id or mints one.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if traceID == "" || len(traceID) > maxTraceIDBytes {
			traceID = uuid.New().String()
		}
		c.Set(ContextTraceID, traceID)
		c.Writer.Header().Set(TraceHeader, traceID)
		c.Next()
	}
}
