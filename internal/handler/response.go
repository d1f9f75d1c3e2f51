package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response helpers. Every reply carries {code, message, data}; code is 0 on
// success, a 5-digit application code otherwise. Services embed that code in
// their error strings ("40402:project not found") and Fail maps the prefix to
// the HTTP status: 400xx -> 400, 404xx -> 404, 409xx -> 409, anything else 500.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

func Error(c *gin.Context, httpCode int, code int, message string) {
	c.JSON(httpCode, gin.H{
		"code":    code,
		"message": message,
		"data":    nil,
	})
}

func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code int, message string) {
	Error(c, http.StatusConflict, code, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, 50001, message)
}

// Fail picks the HTTP status from the application code of a service error.
func Fail(c *gin.Context, err error) {
	code, msg := parseErrorCode(err)
	switch code / 100 {
	case 400:
		BadRequest(c, code, msg)
	case 404:
		NotFound(c, code, msg)
	case 409:
		Conflict(c, code, msg)
	default:
		InternalError(c, msg)
	}
}

func parseID(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 64)
	return uint(id)
}

func parseErrorCode(err error) (int, string) {
	msg := err.Error()
	if len(msg) > 5 && msg[5] == ':' {
		code, e := strconv.Atoi(msg[:5])
		if e == nil {
			return code, msg[6:]
		}
	}
	return 50001, msg
}
