package api

import (
	"net/http"
	"strconv"

	"github.com/community-cms/internal/auth"
	"github.com/community-cms/internal/service"
	"github.com/community-cms/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// loginErrorMessage is deliberately the same for a wrong username and a
// wrong password, so failed attempts cannot enumerate which was off.
const loginErrorMessage = "Invalid login details"

// AdminHandler serves the password-gated admin area
type AdminHandler struct {
	services *service.Services
	gate     *auth.Gate
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, gate *auth.Gate, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		gate:     gate,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// parseID reads the :id path parameter. A non-numeric id renders 404 and
// reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return 0, false
	}
	return id, true
}

// LoginForm handles GET /admin/login
func (h *AdminHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{})
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.gate.Authenticate(username, password) {
		h.log.Warn().Str("username", username).Msg("Failed admin login attempt")
		c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
			"error": loginErrorMessage,
		})
		return
	}

	if err := h.gate.LogIn(c); err != nil {
		h.log.Error().Err(err).Msg("Failed to save admin session")
		serverError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/news")
}

// Logout handles GET /admin/logout. Clears the flag unconditionally, no
// session required.
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.gate.LogOut(c); err != nil {
		h.log.Error().Err(err).Msg("Failed to clear admin session")
	}
	c.Redirect(http.StatusFound, auth.LoginPath)
}

// Waitlist handles GET /admin/waitlist
func (h *AdminHandler) Waitlist(c *gin.Context) {
	entries, err := h.services.Waitlist.Entries(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list waitlist entries")
		serverError(c)
		return
	}
	c.HTML(http.StatusOK, "waitlist.html", gin.H{"entries": entries})
}

// --- News ---

// NewsList handles GET /admin/news
func (h *AdminHandler) NewsList(c *gin.Context) {
	h.renderNewsList(c, http.StatusOK, nil)
}

// NewsCreate handles POST /admin/news, then re-renders the listing page
// the way the combined list+create admin page works.
func (h *AdminHandler) NewsCreate(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")

	if errs := validation.ValidateNewsForm(title, content); len(errs) > 0 {
		h.renderNewsList(c, http.StatusBadRequest, validation.Messages(errs))
		return
	}

	if _, err := h.services.News.Create(c.Request.Context(), title, content); err != nil {
		h.log.Error().Err(err).Msg("Failed to create news post")
		serverError(c)
		return
	}

	h.renderNewsList(c, http.StatusOK, nil)
}

func (h *AdminHandler) renderNewsList(c *gin.Context, status int, errors []string) {
	posts, err := h.services.News.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list news posts")
		serverError(c)
		return
	}
	render(c, h.services.Waitlist, status, "admin_news.html", gin.H{
		"news_items": posts,
		"errors":     errors,
	})
}

// NewsEditForm handles GET /admin/news/edit/:id
func (h *AdminHandler) NewsEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.services.News.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to load news post")
		serverError(c)
		return
	}
	if post == nil {
		notFound(c)
		return
	}

	c.HTML(http.StatusOK, "edit_news.html", gin.H{"news": post})
}

// NewsEdit handles POST /admin/news/edit/:id. The creation date is never
// touched by edits.
func (h *AdminHandler) NewsEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")

	if errs := validation.ValidateNewsForm(title, content); len(errs) > 0 {
		post, err := h.services.News.Get(c.Request.Context(), id)
		if err != nil || post == nil {
			notFound(c)
			return
		}
		c.HTML(http.StatusBadRequest, "edit_news.html", gin.H{
			"news":   post,
			"errors": validation.Messages(errs),
		})
		return
	}

	found, err := h.services.News.Update(c.Request.Context(), id, title, content)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to update news post")
		serverError(c)
		return
	}
	if !found {
		notFound(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/news")
}

// NewsDelete handles GET /admin/news/delete/:id. Deleting a missing id
// still redirects.
func (h *AdminHandler) NewsDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.News.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to delete news post")
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/admin/news")
}

// --- FAQ ---

// FaqList handles GET /admin/faq
func (h *AdminHandler) FaqList(c *gin.Context) {
	h.renderFaqList(c, http.StatusOK, nil)
}

// FaqCreate handles POST /admin/faq
func (h *AdminHandler) FaqCreate(c *gin.Context) {
	question := c.PostForm("question")
	answer := c.PostForm("answer")

	if errs := validation.ValidateFaqForm(question, answer); len(errs) > 0 {
		h.renderFaqList(c, http.StatusBadRequest, validation.Messages(errs))
		return
	}

	if _, err := h.services.Faq.Create(c.Request.Context(), question, answer); err != nil {
		h.log.Error().Err(err).Msg("Failed to create FAQ entry")
		serverError(c)
		return
	}

	h.renderFaqList(c, http.StatusOK, nil)
}

func (h *AdminHandler) renderFaqList(c *gin.Context, status int, errors []string) {
	faqs, err := h.services.Faq.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list FAQ entries")
		serverError(c)
		return
	}
	render(c, h.services.Waitlist, status, "admin_faq.html", gin.H{
		"faqs":   faqs,
		"errors": errors,
	})
}

// FaqEditForm handles GET /admin/faq/edit/:id
func (h *AdminHandler) FaqEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.services.Faq.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to load FAQ entry")
		serverError(c)
		return
	}
	if entry == nil {
		notFound(c)
		return
	}

	c.HTML(http.StatusOK, "edit_faq.html", gin.H{"faq": entry})
}

// FaqEdit handles POST /admin/faq/edit/:id
func (h *AdminHandler) FaqEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	question := c.PostForm("question")
	answer := c.PostForm("answer")

	if errs := validation.ValidateFaqForm(question, answer); len(errs) > 0 {
		entry, err := h.services.Faq.Get(c.Request.Context(), id)
		if err != nil || entry == nil {
			notFound(c)
			return
		}
		c.HTML(http.StatusBadRequest, "edit_faq.html", gin.H{
			"faq":    entry,
			"errors": validation.Messages(errs),
		})
		return
	}

	found, err := h.services.Faq.Update(c.Request.Context(), id, question, answer)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to update FAQ entry")
		serverError(c)
		return
	}
	if !found {
		notFound(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/faq")
}

// FaqDelete handles GET /admin/faq/delete/:id
func (h *AdminHandler) FaqDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Faq.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to delete FAQ entry")
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/admin/faq")
}

// --- Resources ---

// ResourceList handles GET /admin/resources
func (h *AdminHandler) ResourceList(c *gin.Context) {
	h.renderResourceList(c, http.StatusOK, nil)
}

// ResourceCreate handles POST /admin/resources
func (h *AdminHandler) ResourceCreate(c *gin.Context) {
	in := resourceInputFromForm(c)

	if errs := validation.ValidateResourceForm(in.Title, in.ResourceType, in.URL); len(errs) > 0 {
		h.renderResourceList(c, http.StatusBadRequest, validation.Messages(errs))
		return
	}

	if _, err := h.services.Resource.Create(c.Request.Context(), in); err != nil {
		h.log.Error().Err(err).Msg("Failed to create resource")
		serverError(c)
		return
	}

	h.renderResourceList(c, http.StatusOK, nil)
}

func (h *AdminHandler) renderResourceList(c *gin.Context, status int, errors []string) {
	resources, err := h.services.Resource.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list resources")
		serverError(c)
		return
	}
	render(c, h.services.Waitlist, status, "admin_resources.html", gin.H{
		"resources": resources,
		"errors":    errors,
	})
}

// ResourceEditForm handles GET /admin/resources/edit/:id
func (h *AdminHandler) ResourceEditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res, err := h.services.Resource.Get(c.Request.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to load resource")
		serverError(c)
		return
	}
	if res == nil {
		notFound(c)
		return
	}

	c.HTML(http.StatusOK, "edit_resource.html", gin.H{"resource": res})
}

// ResourceEdit handles POST /admin/resources/edit/:id. The updated_at
// stamp is refreshed on every successful edit.
func (h *AdminHandler) ResourceEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	in := resourceInputFromForm(c)

	if errs := validation.ValidateResourceForm(in.Title, in.ResourceType, in.URL); len(errs) > 0 {
		res, err := h.services.Resource.Get(c.Request.Context(), id)
		if err != nil || res == nil {
			notFound(c)
			return
		}
		c.HTML(http.StatusBadRequest, "edit_resource.html", gin.H{
			"resource": res,
			"errors":   validation.Messages(errs),
		})
		return
	}

	found, err := h.services.Resource.Update(c.Request.Context(), id, in)
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to update resource")
		serverError(c)
		return
	}
	if !found {
		notFound(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/resources")
}

// ResourceDelete handles GET /admin/resources/delete/:id
func (h *AdminHandler) ResourceDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.services.Resource.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to delete resource")
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/admin/resources")
}

func resourceInputFromForm(c *gin.Context) service.ResourceInput {
	return service.ResourceInput{
		Title:        c.PostForm("title"),
		ResourceType: c.PostForm("resource_type"),
		URL:          c.PostForm("url"),
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
	}
}
