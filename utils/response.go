package utils

import "github.com/gin-gonic/gin"

// Respuesta is the envelope of every JSON answer of the API.
type Respuesta struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details []string    `json:"details,omitempty"`
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Respuesta{Success: true, Data: data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, Respuesta{Error: message})
}

// JSONErrorDetails is JSONError plus the list of broken rules.
func JSONErrorDetails(c *gin.Context, code int, message string, details []string) {
	c.JSON(code, Respuesta{Error: message, Details: details})
}
