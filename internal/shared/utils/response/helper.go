package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RedirectToLogin sends the browser back to the login page. Auth gaps are
// surfaced as redirects rather than JSON errors.
func RedirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
	c.Abort()
}
