package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

const (
	serviceName    = "Bias Labs API"
	serviceVersion = "1.0.0"
)

type CorpusStore interface {
	Stats() *model.CorpusStats
	Totals() (articles, narratives int)
}

type StatsHandler struct {
	store CorpusStore
}

func NewStatsHandler(store CorpusStore) *StatsHandler {
	return &StatsHandler{store: store}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	stats := h.store.Stats()

	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"error": "No articles available"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalArticles:      stats.TotalArticles,
		TotalNarratives:    stats.TotalNarratives,
		AverageBiasScores:  toBiasScoresResponse(stats.AvgBiasScores),
		SourceDistribution: stats.SourceCounts,
		TimeRange: TimeRangeResponse{
			EarliestArticle: stats.EarliestArticle.Format(time.RFC3339),
			LatestArticle:   stats.LatestArticle.Format(time.RFC3339),
		},
	})
}

func (h *StatsHandler) GetHealth(c *gin.Context) {
	totalArticles, totalNarratives := h.store.Totals()

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   serviceName,
		"version":   serviceVersion,
		"data_stats": gin.H{
			"total_articles":   totalArticles,
			"total_narratives": totalNarratives,
		},
	})
}

func (h *StatsHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Bias Labs API",
		"health":  "/health",
		"endpoints": gin.H{
			"articles":   "/articles",
			"narratives": "/narratives",
			"stats":      "/stats",
		},
	})
}
