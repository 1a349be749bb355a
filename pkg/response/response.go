package response

import "github.com/gin-gonic/gin"

// Client-visible bodies follow the original wire format: failures are
// {"error": <text>} or, for the auth middleware, {"message": <text>};
// successes are plain objects assembled by the handlers.

// Err writes a {"error": message} body with the given status.
func Err(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Message writes a {"message": text} body with the given status.
func Message(c *gin.Context, status int, text string) {
	c.JSON(status, gin.H{"message": text})
}

// AbortMessage writes a {"message": text} body and stops the handler chain.
func AbortMessage(c *gin.Context, status int, text string) {
	c.AbortWithStatusJSON(status, gin.H{"message": text})
}
