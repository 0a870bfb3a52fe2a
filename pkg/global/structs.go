package global

import "github.com/gin-gonic/gin"

// ErrorBody is the flat error envelope every endpoint uses, e.g.
// {"error": "Unauthorized"}.
type ErrorBody struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}
