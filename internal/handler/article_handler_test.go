package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

type fakeArticleStore struct {
	articles []model.Article
	article  *model.Article

	lastLimit       int
	lastOffset      int
	lastThreshold   *float64
	lastNarrativeID string
}

func (f *fakeArticleStore) ListArticles(limit, offset int, biasThreshold *float64, narrativeID string) []model.Article {
	f.lastLimit = limit
	f.lastOffset = offset
	f.lastThreshold = biasThreshold
	f.lastNarrativeID = narrativeID
	return f.articles
}

func (f *fakeArticleStore) GetArticle(id string) (*model.Article, bool) {
	if f.article == nil {
		return nil, false
	}
	return f.article, true
}

func newTestRouter(store ArticleStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArticleHandler(store)
	r.GET("/articles", h.GetArticles)
	r.GET("/articles/:id", h.GetArticle)
	return r
}

func TestGetArticles_ReturnsSummaries(t *testing.T) {
	published := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeArticleStore{
		articles: []model.Article{
			{
				ID:            "a1",
				Title:         "Test headline",
				Content:       "body text that must not leak into summaries",
				Source:        "Reuters",
				PublishedDate: published,
				BiasScores:    model.BiasScores{Overall: 42.5},
				Highlights:    []model.HighlightedPhrase{{Text: "controversial"}},
				NarrativeID:   "n1",
			},
		},
	}

	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []ArticleSummaryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "Test headline", res[0].Title)
	assert.Equal(t, 42.5, res[0].BiasScores.Overall)
	assert.Equal(t, "n1", res[0].NarrativeID)
	assert.Equal(t, published.Format(time.RFC3339), res[0].PublishedDate)

	// Summary shape drops body text and highlights.
	var raw []map[string]any
	json.Unmarshal(w.Body.Bytes(), &raw)
	if _, ok := raw[0]["content"]; ok {
		t.Error("summary response includes content")
	}
	if _, ok := raw[0]["highlighted_phrases"]; ok {
		t.Error("summary response includes highlighted_phrases")
	}
}

func TestGetArticles_DefaultLimitAndOffset(t *testing.T) {
	store := &fakeArticleStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 10, store.lastLimit)
	assert.Equal(t, 0, store.lastOffset)
	assert.Equal(t, (*float64)(nil), store.lastThreshold)
	assert.Equal(t, "", store.lastNarrativeID)
}

func TestGetArticles_LimitClampedToMax(t *testing.T) {
	store := &fakeArticleStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?limit=500", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 50, store.lastLimit)
}

func TestGetArticles_NegativeOffsetDefaults(t *testing.T) {
	store := &fakeArticleStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?offset=-3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 0, store.lastOffset)
}

func TestGetArticles_BiasThresholdParsed(t *testing.T) {
	store := &fakeArticleStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?bias_threshold=62.5&narrative_id=n2", nil)
	r.ServeHTTP(w, req)

	assert.NotEqual(t, (*float64)(nil), store.lastThreshold)
	assert.Equal(t, 62.5, *store.lastThreshold)
	assert.Equal(t, "n2", store.lastNarrativeID)
}

func TestGetArticles_BiasThresholdClamped(t *testing.T) {
	store := &fakeArticleStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?bias_threshold=250", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, 100.0, *store.lastThreshold)
}

func TestGetArticles_BiasThresholdInvalidIgnored(t *testing.T) {
	store := &fakeArticleStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?bias_threshold=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, (*float64)(nil), store.lastThreshold)
}

func TestGetArticle_Found(t *testing.T) {
	store := &fakeArticleStore{
		article: &model.Article{
			ID:      "a1",
			Title:   "Full article",
			Content: "Full body",
			Highlights: []model.HighlightedPhrase{
				{Text: "controversial", StartPos: 5, EndPos: 18, BiasType: "framing_choices", Confidence: 0.8, Color: "#feca57"},
			},
		},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles/a1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Full article", res.Title)
	assert.Equal(t, "Full body", res.Content)
	assert.Equal(t, 1, len(res.HighlightedPhrases))
	assert.Equal(t, "controversial", res.HighlightedPhrases[0].Text)
}

func TestGetArticle_NotFound(t *testing.T) {
	store := &fakeArticleStore{}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles/unknown-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Article with ID unknown-id not found", res["error"])
}
