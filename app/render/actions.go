package render

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/lysyi3m/newsboard/app/cfg"
	"github.com/lysyi3m/newsboard/app/newsapi"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AdminSource exposes the two admin endpoints.
type AdminSource interface {
	ClearAll(ctx context.Context) (*newsapi.ClearResult, error)
	Statistics(ctx context.Context) (*newsapi.Statistics, error)
}

var _ AdminSource = (*newsapi.Client)(nil)

// Actions runs the bulk-delete and statistics actions.
type Actions struct {
	admin     AdminSource
	renderer  *Renderer
	labels    cfg.Labels
	hideAfter time.Duration
	afterFunc func(d time.Duration, f func())
}

func NewActions(admin AdminSource, renderer *Renderer, labels cfg.Labels, hideAfter time.Duration) *Actions {
	return &Actions{
		admin:     admin,
		renderer:  renderer,
		labels:    labels,
		hideAfter: hideAfter,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// HideAfter is how long the statistics panel stays visible.
func (a *Actions) HideAfter() time.Duration {
	return a.hideAfter
}

// ClearAllArticles deletes every article once the user confirms, then
// reloads the list into target.
func (a *Actions) ClearAllArticles(ctx context.Context, confirmer Confirmer, notifier Notifier, target Target) {
	if !confirmer.Confirm(a.labels.ClearConfirm) {
		slog.Debug("Clear all declined")
		return
	}

	result, err := a.admin.ClearAll(ctx)
	if err != nil {
		slog.Error("Failed to clear articles", "error", err)
		notifier.Notify(a.failure(err, a.labels.ClearFailed))
		return
	}

	slog.Info("Articles cleared", "message", result.Message)
	notifier.Notify(a.labels.SuccessPrefix + " " + result.Message)

	a.renderer.LoadArticles(ctx, target)
}

// ShowStatistics reveals the statistics panel and hides it again after the
// configured delay. The hide is never cancelled.
func (a *Actions) ShowStatistics(ctx context.Context, view StatsView) {
	stats, err := a.admin.Statistics(ctx)
	if err != nil {
		slog.Error("Failed to load statistics", "error", err)
		view.Notify(a.failure(err, a.labels.StatsFailed))
		return
	}

	view.Show(a.StatsPanel(stats))
	a.afterFunc(a.hideAfter, view.Hide)
}

func (a *Actions) StatsPanel(stats *newsapi.Statistics) string {
	statCard := func(value int, label string) *html.Node {
		return element(atom.Div, "stat-card",
			element(atom.H3, "", textNode(strconv.Itoa(value))),
			element(atom.P, "", textNode(label)),
		)
	}

	return Markup(
		element(atom.H2, "", textNode(a.labels.StatsHeading)),
		element(atom.Div, "stats-grid",
			statCard(stats.TotalArticles, a.labels.StatsTotal),
			statCard(stats.TotalSources, a.labels.StatsSources),
		),
	)
}

// failure keeps the generic text for HTTP failures and the error's own
// message otherwise.
func (a *Actions) failure(err error, generic string) string {
	if _, ok := newsapi.IsStatus(err); ok {
		return a.labels.FailurePrefix + " " + generic
	}
	return a.labels.FailurePrefix + " " + err.Error()
}
