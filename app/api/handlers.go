package api

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/newsboard/app/cfg"
	"github.com/lysyi3m/newsboard/app/feed"
	"github.com/lysyi3m/newsboard/app/render"
)

//go:embed templates/index.html
var templateFS embed.FS

func NewHandler(source render.ArticleSource, admin render.AdminSource,
	renderer *render.Renderer, actions *render.Actions,
	labels cfg.Labels, version string) *Handler {
	page := template.Must(template.ParseFS(templateFS, "templates/index.html"))

	return &Handler{
		source:    source,
		admin:     admin,
		renderer:  renderer,
		actions:   actions,
		generator: feed.NewGenerator(),
		labels:    labels,
		version:   version,
		page:      page,
	}
}

func (h *Handler) GetIndex(c *gin.Context) {
	panel := render.NewPanel()
	h.renderer.LoadArticles(c.Request.Context(), panel)

	h.renderPage(c, http.StatusOK, panel)
}

func (h *Handler) GetArticlesFragment(c *gin.Context) {
	panel := render.NewPanel()
	h.renderer.LoadArticles(c.Request.Context(), panel)

	c.JSON(http.StatusOK, fragmentResponse{
		Content: panel.Content(),
		Total:   panel.Total(),
	})
}

func (h *Handler) PostClear(c *gin.Context) {
	confirmed := c.PostForm("confirm") == "true"
	confirmer := render.ConfirmFunc(func(string) bool { return confirmed })

	panel := render.NewPanel()
	h.actions.ClearAllArticles(c.Request.Context(), confirmer, panel, panel)

	if !confirmed {
		slog.Debug("Clear request without confirmation", "request_id", c.GetHeader(requestIDHeader))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	// A failed clear leaves the list untouched; show it as it is
	if panel.Content() == "" {
		h.renderer.LoadArticles(c.Request.Context(), panel)
	}

	h.renderPage(c, http.StatusOK, panel)
}

func (h *Handler) GetStats(c *gin.Context) {
	panel := render.NewPanel()
	h.actions.ShowStatistics(c.Request.Context(), panel)

	fragment, visible := panel.Stats()
	if !visible {
		c.JSON(http.StatusOK, statsResponse{Notices: panel.Notices()})
		return
	}

	c.JSON(http.StatusOK, statsResponse{
		Visible:     true,
		Content:     fragment,
		HideAfterMs: h.actions.HideAfter().Milliseconds(),
	})
}

func (h *Handler) GetFeed(c *gin.Context) {
	list, err := h.source.ListArticles(c.Request.Context())
	if err != nil {
		slog.Error("Failed to load articles for feed", "request_id", c.GetHeader(requestIDHeader), "error", err)
		c.Status(http.StatusBadGateway)
		return
	}

	channel := feed.Channel{
		Title:       h.labels.PageTitle,
		Link:        h.baseURL(c) + "/",
		Description: h.labels.FeedDescription,
		SelfURL:     h.baseURL(c) + "/feed.xml",
		Generator:   "Newsboard/" + h.version,
		Location:    time.Local,
	}

	rss, err := h.generator.Run(channel, list.Articles)
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(list.Articles)))

	c.String(http.StatusOK, rss)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
		"api":       h.source.BaseURL(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if stats, err := h.admin.Statistics(ctx); err == nil {
		health["status"] = "ok"
		health["articles"] = stats.TotalArticles
		health["sources"] = stats.TotalSources
	} else {
		health["status"] = "degraded"
		health["error"] = err.Error()
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) renderPage(c *gin.Context, status int, panel *render.Panel) {
	data := pageData{
		Labels: h.labels,
		// Panel content is built from escaped text nodes only
		Content:     template.HTML(panel.Content()),
		Total:       panel.Total(),
		Notices:     panel.Notices(),
		HideAfterMs: h.actions.HideAfter().Milliseconds(),
		Version:     h.version,
	}

	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.page.Execute(c.Writer, data); err != nil {
		slog.Error("Page rendering error", "request_id", c.GetHeader(requestIDHeader), "error", err)
	}
}

func (h *Handler) baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
