package api

import (
	"net/http"

	"github.com/community-cms/internal/service"
	"github.com/gin-gonic/gin"
)

// render writes an HTML page with the running member count injected, the
// way every page of the site displays it. The count read degrades to 0 on
// data-layer failure, so rendering never fails because of it.
func render(c *gin.Context, waitlist service.WaitlistService, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["total_members"] = waitlist.TotalMembers(c.Request.Context())
	c.HTML(status, name, data)
}

// notFound renders the 404 page.
func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

// serverError renders the generic 500 page. Internal detail stays in the
// logs, never in the response.
func serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{})
}
