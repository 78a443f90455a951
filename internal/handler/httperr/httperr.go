// Package httperr defines the error envelope every non-2xx response uses.
package httperr

import "github.com/gin-gonic/gin"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Abort writes the envelope and stops the handler chain. The underlying err
// is attached to the gin context so the error middleware and request logger
// can see it; msg is the only part exposed to the caller.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
