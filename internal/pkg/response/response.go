package response

import "github.com/gin-gonic/gin"

// Error writes the flat error envelope the booking wizard expects.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

// ErrorWithDetail adds a secondary human-readable hint to the envelope.
func ErrorWithDetail(c *gin.Context, statusCode int, message string, detail string) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"message": detail,
	})
}
