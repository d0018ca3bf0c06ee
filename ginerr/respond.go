package ginerr

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/errkit/translate"
)

// Respond translates err and writes the response directly. For handlers that
// prefer an explicit call over c.Error + ErrorHandler.
func Respond(c *gin.Context, reg *translate.Registry, err error) {
	resp := reg.TranslateError(c.Request.Context(), err)
	c.AbortWithStatusJSON(resp.Status, resp.Body())
}
