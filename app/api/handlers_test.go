package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/newsboard/app/cfg"
	"github.com/lysyi3m/newsboard/app/newsapi"
	"github.com/lysyi3m/newsboard/app/render"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeNewsAPI mimics the remote article API and counts calls per route
type fakeNewsAPI struct {
	mu         sync.Mutex
	listStatus int
	listBody   string
	calls      map[string]int
}

func (f *fakeNewsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls[r.Method+" "+r.URL.Path]++
	listStatus, listBody := f.listStatus, f.listBody
	f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/noticias/":
		w.WriteHeader(listStatus)
		w.Write([]byte(listBody))
	case r.Method == http.MethodDelete && r.URL.Path == "/api/noticias/limpar_tudo/":
		f.mu.Lock()
		f.listBody = `[]`
		f.mu.Unlock()
		w.Write([]byte(`{"message": "2 notícias deletadas com sucesso"}`))
	case r.Method == http.MethodGet && r.URL.Path == "/api/noticias/estatisticas/":
		w.Write([]byte(`{"total_noticias": 2, "total_fontes": 1}`))
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeNewsAPI) count(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

const twoArticles = `[
	{"id": 1, "titulo": "Primeira <b>notícia</b>", "fonte": "G1", "link": "https://g1.globo.com/1", "data_extracao": "2024-01-15T10:30:00Z"},
	{"id": 2, "titulo": "Segunda", "fonte": "G1"}
]`

// Test helper: wire the whole stack against a fake API
func setupTestRouter(t *testing.T, listStatus int, listBody string, clearLimit rate.Limit) (*gin.Engine, *fakeNewsAPI) {
	t.Helper()

	api := &fakeNewsAPI{listStatus: listStatus, listBody: listBody, calls: make(map[string]int)}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	labels := cfg.DefaultLabels()
	client := newsapi.NewClient(server.URL+"/api/noticias/", server.Client(), "test")
	formatter := render.NewFormatter(labels, render.NewDateFormatter("pt-BR", time.UTC, labels.UnknownDate))
	renderer := render.NewRenderer(client, formatter, labels, "pt-BR")
	actions := render.NewActions(client, renderer, labels, 5*time.Second)

	handler := NewHandler(client, client, renderer, actions, labels, "test")
	router := NewServer(handler, clearLimit, 1)
	gin.SetMode(gin.TestMode)

	return router, api
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	if err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return doc
}

func TestGetIndex(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusOK, twoArticles, 0)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("Expected a request ID header")
	}
	if strings.Contains(w.Body.String(), "<b>notícia</b>") {
		t.Error("Article text must be escaped in the page")
	}

	doc := parseBody(t, w)
	if doc.Find("#newsContainer .news-card").Length() != 2 {
		t.Errorf("Expected 2 cards, got %d", doc.Find("#newsContainer .news-card").Length())
	}
	if doc.Find("#totalNoticias").Text() != "Total: 2 notícias" {
		t.Errorf("Expected total label, got '%s'", doc.Find("#totalNoticias").Text())
	}
	if doc.Find("#newsContainer a.link").Length() != 1 {
		t.Errorf("Expected exactly one read-more link, got %d", doc.Find("#newsContainer a.link").Length())
	}
}

func TestGetIndex_APIError(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusInternalServerError, `{}`, 0)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	doc := parseBody(t, w)
	if !strings.Contains(doc.Find("#newsContainer .error").Text(), "500") {
		t.Errorf("Expected error panel with status, got %s", w.Body.String())
	}
	if doc.Find("#totalNoticias").Text() != "" {
		t.Errorf("Expected empty total, got '%s'", doc.Find("#totalNoticias").Text())
	}
}

func TestGetArticlesFragment(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusOK, `{"count": 1, "next": null, "previous": null, "results": [{"id": 9, "titulo": "Única"}]}`, 0)

	req := httptest.NewRequest(http.MethodGet, "/fragments/articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp fragmentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Expected JSON response, got: %v", err)
	}
	if resp.Total != "Total: 1 notícia" {
		t.Errorf("Expected singular total, got '%s'", resp.Total)
	}
	if strings.Count(resp.Content, `class="news-card"`) != 1 {
		t.Errorf("Expected one card, got %s", resp.Content)
	}
}

func TestPostClear_Confirmed(t *testing.T) {
	router, api := setupTestRouter(t, http.StatusOK, twoArticles, 0)

	form := url.Values{"confirm": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/actions/clear", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if api.count("DELETE /api/noticias/limpar_tudo/") != 1 {
		t.Errorf("Expected one DELETE, got %d", api.count("DELETE /api/noticias/limpar_tudo/"))
	}
	if api.count("GET /api/noticias/") != 1 {
		t.Errorf("Expected exactly one reload, got %d", api.count("GET /api/noticias/"))
	}

	doc := parseBody(t, w)
	if !strings.Contains(doc.Find(".notice").Text(), "2 notícias deletadas com sucesso") {
		t.Errorf("Expected API message in notice, got '%s'", doc.Find(".notice").Text())
	}
	if doc.Find("#newsContainer .empty").Length() != 1 {
		t.Error("Expected the empty panel after clearing")
	}
}

func TestPostClear_NotConfirmed(t *testing.T) {
	router, api := setupTestRouter(t, http.StatusOK, twoArticles, 0)

	req := httptest.NewRequest(http.MethodPost, "/actions/clear", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected redirect, got %d", w.Code)
	}
	if api.count("DELETE /api/noticias/limpar_tudo/") != 0 || api.count("GET /api/noticias/") != 0 {
		t.Error("Expected no API calls without confirmation")
	}
}

func TestPostClear_RateLimited(t *testing.T) {
	router, api := setupTestRouter(t, http.StatusOK, twoArticles, rate.Every(time.Hour))

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		form := url.Values{"confirm": {"true"}}
		req := httptest.NewRequest(http.MethodPost, "/actions/clear", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("Expected [200 429], got %v", codes)
	}
	if api.count("DELETE /api/noticias/limpar_tudo/") != 1 {
		t.Errorf("Expected the limited request not to reach the API, got %d", api.count("DELETE /api/noticias/limpar_tudo/"))
	}
}

func TestGetStats(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusOK, twoArticles, 0)

	req := httptest.NewRequest(http.MethodGet, "/actions/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp statsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Expected JSON response, got: %v", err)
	}
	if !resp.Visible {
		t.Fatalf("Expected visible statistics, got %+v", resp)
	}
	if resp.HideAfterMs != 5000 {
		t.Errorf("Expected hide delay 5000ms, got %d", resp.HideAfterMs)
	}
	if !strings.Contains(resp.Content, "Total de Notícias") {
		t.Errorf("Expected statistics panel, got %s", resp.Content)
	}
}

func TestGetFeed(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusOK, twoArticles, 0)

	req := httptest.NewRequest(http.MethodGet, "/feed.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "application/rss+xml") {
		t.Errorf("Expected RSS content type, got '%s'", w.Header().Get("Content-Type"))
	}
	if w.Header().Get("X-Feed-Items") != "2" {
		t.Errorf("Expected 2 feed items, got '%s'", w.Header().Get("X-Feed-Items"))
	}
}

func TestGetFeed_APIError(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusServiceUnavailable, ``, 0)

	req := httptest.NewRequest(http.MethodGet, "/feed.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
}

func TestGetHealth(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusOK, twoArticles, 0)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var health map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("Expected JSON response, got: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", health["status"])
	}
	if health["articles"] != float64(2) {
		t.Errorf("Expected 2 articles, got %v", health["articles"])
	}
}

func TestRequestIDIsKept(t *testing.T) {
	router, _ := setupTestRouter(t, http.StatusOK, `[]`, 0)

	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "abc-123" {
		t.Errorf("Expected supplied request ID to be echoed, got '%s'", w.Header().Get(requestIDHeader))
	}
}
