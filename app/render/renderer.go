package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/newsboard/app/cfg"
	"github.com/lysyi3m/newsboard/app/newsapi"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ArticleSource fetches the collection endpoint.
type ArticleSource interface {
	ListArticles(ctx context.Context) (*newsapi.ArticleList, error)
	BaseURL() string
}

var _ ArticleSource = (*newsapi.Client)(nil)

// Renderer fetches the article list and mounts it into a Target. It holds
// no per-render state.
type Renderer struct {
	source    ArticleSource
	formatter *Formatter
	labels    cfg.Labels
	locale    string
}

func NewRenderer(source ArticleSource, formatter *Formatter, labels cfg.Labels, locale string) *Renderer {
	return &Renderer{
		source:    source,
		formatter: formatter,
		labels:    labels,
		locale:    locale,
	}
}

// LoadArticles shows a loading indicator, fetches the list and replaces it
// with the cards, the empty panel or the error panel. Failures are rendered,
// never returned.
func (r *Renderer) LoadArticles(ctx context.Context, target Target) {
	target.SetContent(r.LoadingPanel())
	target.SetTotal("")

	list, err := r.source.ListArticles(ctx)
	if err != nil {
		slog.Error("Failed to load articles", "api", r.source.BaseURL(), "error", err)
		target.SetContent(r.ErrorPanel(err))
		return
	}

	if len(list.Articles) == 0 {
		target.SetContent(r.EmptyPanel())
		return
	}

	target.SetTotal(TotalLabel(r.locale, len(list.Articles)))

	grid := element(atom.Div, "news-grid")
	for _, article := range list.Articles {
		grid.AppendChild(r.formatter.FormatArticle(article))
	}

	target.SetContent(Markup(grid, r.truncationNote(list)))

	slog.Info("Articles loaded",
		"count", len(list.Articles),
		"shape", list.Shape.String(),
		"truncated", list.Truncated())
}

func (r *Renderer) LoadingPanel() string {
	return Markup(element(atom.Div, "loading", textNode(r.labels.Loading)))
}

func (r *Renderer) EmptyPanel() string {
	return Markup(element(atom.Div, "empty",
		element(atom.H2, "", textNode(r.labels.EmptyHeading)),
		element(atom.P, "", textNode(r.labels.EmptyHint)),
		element(atom.Code, "", textNode(r.labels.EmptyCommand)),
	))
}

// ErrorPanel describes err plus hints on getting the API up.
func (r *Renderer) ErrorPanel(err error) string {
	endpoint := element(atom.P, "endpoint",
		textNode(r.labels.ErrorEndpoint+" "),
		element(atom.Strong, "", textNode(r.source.BaseURL())),
	)

	return Markup(element(atom.Div, "error",
		element(atom.H2, "", textNode(r.labels.ErrorHeading)),
		element(atom.P, "message", textNode(err.Error())),
		element(atom.P, "", textNode(r.labels.ErrorHint)),
		element(atom.Code, "", textNode(r.labels.ErrorCommand)),
		endpoint,
	))
}

func (r *Renderer) truncationNote(list *newsapi.ArticleList) *html.Node {
	if !list.Truncated() {
		return nil
	}
	return element(atom.P, "truncated",
		textNode(fmt.Sprintf(r.labels.Truncated, len(list.Articles), list.Count)))
}
