package api

import (
	"html/template"

	"github.com/lysyi3m/newsboard/app/cfg"
	"github.com/lysyi3m/newsboard/app/feed"
	"github.com/lysyi3m/newsboard/app/newsapi"
	"github.com/lysyi3m/newsboard/app/render"
)

type GeneratorInterface interface {
	Run(channel feed.Channel, articles []newsapi.Article) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

type Handler struct {
	source    render.ArticleSource
	admin     render.AdminSource
	renderer  *render.Renderer
	actions   *render.Actions
	generator GeneratorInterface
	labels    cfg.Labels
	version   string
	page      *template.Template
}

// pageData feeds templates/index.html
type pageData struct {
	Labels      cfg.Labels
	Content     template.HTML
	Total       string
	Notices     []string
	HideAfterMs int64
	Version     string
}

// statsResponse is returned by GET /actions/stats
type statsResponse struct {
	Visible     bool     `json:"visible"`
	Content     string   `json:"content,omitempty"`
	HideAfterMs int64    `json:"hide_after_ms,omitempty"`
	Notices     []string `json:"notices,omitempty"`
}

// fragmentResponse is returned by GET /fragments/articles
type fragmentResponse struct {
	Content string `json:"content"`
	Total   string `json:"total"`
}
