package api

import (
	"net/http"

	"github.com/community-cms/internal/service"
	"github.com/community-cms/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PublicHandler serves the public site pages and the waitlist signup
type PublicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(services *service.Services, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		services: services,
		log:      log.With().Str("handler", "public").Logger(),
	}
}

// Home handles GET /
func (h *PublicHandler) Home(c *gin.Context) {
	render(c, h.services.Waitlist, http.StatusOK, "index.html", gin.H{})
}

// About handles GET /about
func (h *PublicHandler) About(c *gin.Context) {
	render(c, h.services.Waitlist, http.StatusOK, "about.html", gin.H{})
}

// Community handles GET /community
func (h *PublicHandler) Community(c *gin.Context) {
	render(c, h.services.Waitlist, http.StatusOK, "community.html", gin.H{})
}

// Faq handles GET /faq
func (h *PublicHandler) Faq(c *gin.Context) {
	faqs, err := h.services.Faq.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list FAQ entries")
		serverError(c)
		return
	}
	render(c, h.services.Waitlist, http.StatusOK, "faq.html", gin.H{"faqs": faqs})
}

// News handles GET /news, newest-first
func (h *PublicHandler) News(c *gin.Context) {
	posts, err := h.services.News.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list news posts")
		serverError(c)
		return
	}
	render(c, h.services.Waitlist, http.StatusOK, "news.html", gin.H{"news_items": posts})
}

// Resources handles GET /resources, newest-first
func (h *PublicHandler) Resources(c *gin.Context) {
	resources, err := h.services.Resource.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list resources")
		serverError(c)
		return
	}
	render(c, h.services.Waitlist, http.StatusOK, "resources.html", gin.H{"resources": resources})
}

// Join handles POST /join. Any non-empty email is accepted, duplicates
// included; a missing email is a caller-input error.
func (h *PublicHandler) Join(c *gin.Context) {
	email := c.PostForm("email")

	if errs := validation.ValidateJoinForm(email); len(errs) > 0 {
		render(c, h.services.Waitlist, http.StatusBadRequest, "index.html", gin.H{
			"error": errs[0].Message,
		})
		return
	}

	if _, err := h.services.Waitlist.Join(c.Request.Context(), email); err != nil {
		h.log.Error().Err(err).Msg("Failed to record waitlist signup")
		serverError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
