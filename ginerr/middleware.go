package ginerr

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/errkit/errors"
	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/translate"
)

// HeaderRequestID is the request correlation header.
const HeaderRequestID = "X-Request-Id"

// RequestID injects a unique X-Request-Id header into every request/response
// and stores the id in the request context so translation logs carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Recovery returns a middleware that recovers from panics, translates them as
// internal conditions, and transmits the translated response.
func Recovery(reg *translate.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				cond := errors.Internal(fmt.Errorf("panic: %v\n%s", rec, debug.Stack()))
				resp := reg.Translate(c.Request.Context(), cond)
				c.AbortWithStatusJSON(resp.Status, resp.Body())
			}
		}()
		c.Next()
	}
}

// ErrorHandler returns a middleware that drains errors attached via c.Error,
// translates the last one, and transmits the response. Handlers that already
// wrote a response are left alone.
func ErrorHandler(reg *translate.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		resp := reg.TranslateError(c.Request.Context(), c.Errors.Last().Err)
		c.AbortWithStatusJSON(resp.Status, resp.Body())
	}
}
