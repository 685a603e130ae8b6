package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Abort writes the standard body for code and stops the handler chain.
func Abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: messageFor(code),
	})
}

// Respond maps a use case error onto the HTTP error contract. Anything
// that is not a BusinessError is logged and reported as internal.
func Respond(c *gin.Context, log *zap.Logger, fallbackCode string, err error) {
	kind, ok := KindOf(err)
	if !ok {
		log.Error("request failed",
			zap.String("code", fallbackCode),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Internal(c, fallbackCode, messageFor(fallbackCode))
		return
	}

	code := err.Error()
	Write(c, kind.Status(), code, messageFor(code))
}
