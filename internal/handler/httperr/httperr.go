package httperr

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const retryAfterHeader = "Retry-After"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for the logging middleware and
// answers with msg only; err is never shown to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := newResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRetry is AbortWithError plus a Retry-After hint in whole seconds.
func AbortWithRetry(c *gin.Context, status int, err error, msg string, retryAfter time.Duration, detail any) {
	secs := int(math.Ceil(retryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	c.Header(retryAfterHeader, strconv.Itoa(secs))
	AbortWithError(c, status, err, msg, detail)
}
