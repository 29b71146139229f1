package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the envelope for successful responses
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorBody holds the error code and message of a failed response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for failed responses
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// SendSuccess writes a success envelope with the given status code
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// SendError writes an error envelope with the given status code
func SendError(c *gin.Context, statusCode int, errorCode, message string) {
	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    errorCode,
			Message: message,
		},
	})
}
