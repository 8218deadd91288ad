package render

import (
	"cmp"
	"net/url"

	"github.com/lysyi3m/newsboard/app/cfg"
	"github.com/lysyi3m/newsboard/app/newsapi"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Formatter turns articles into card fragments.
type Formatter struct {
	labels cfg.Labels
	dates  *DateFormatter
}

func NewFormatter(labels cfg.Labels, dates *DateFormatter) *Formatter {
	return &Formatter{labels: labels, dates: dates}
}

// FormatArticle builds the card for one article. Text fields become text
// nodes, so serializing the card escapes them.
func (f *Formatter) FormatArticle(article newsapi.Article) *html.Node {
	id := cmp.Or(string(article.ID), "0")
	title := cmp.Or(article.Title, f.labels.NoTitle)
	description := cmp.Or(article.Description, f.labels.NoDescription)
	source := cmp.Or(article.SourceName, f.labels.UnknownSource)

	card := element(atom.Div, "news-card",
		element(atom.Div, "meta",
			element(atom.Span, "badge", textNode("#"+id)),
			element(atom.Span, "fonte-badge", textNode(source)),
			element(atom.Span, "", textNode("📅 "+f.dates.FormatDate(article.ExtractedAt))),
		),
		element(atom.H3, "", textNode(title)),
		element(atom.P, "", textNode(description)),
	)

	if link, ok := safeLink(article.Link); ok {
		anchor := element(atom.A, "link", textNode(f.labels.ReadMore))
		withAttr(anchor, "href", link)
		withAttr(anchor, "target", "_blank")
		withAttr(anchor, "rel", "noopener noreferrer")
		card.AppendChild(anchor)
	}

	return card
}

// safeLink accepts absolute http(s) URLs only; anything else, including
// javascript: URLs, counts as no link.
func safeLink(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return raw, true
}
