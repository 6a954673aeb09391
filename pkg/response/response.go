package response

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint returns. On failure ErrorCode
// carries the HTTP status and Data is null.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	ErrorCode int         `json:"error_code,omitempty"`
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(200, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(201, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Data:      nil,
		ErrorCode: code,
	})
}

// AbortError writes the error envelope and stops the handler chain. Used by
// middleware.
func AbortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{
		Success:   false,
		Message:   message,
		Data:      nil,
		ErrorCode: code,
	})
}
