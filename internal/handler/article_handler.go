package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

type ArticleStore interface {
	ListArticles(limit, offset int, biasThreshold *float64, narrativeID string) []model.Article
	GetArticle(id string) (*model.Article, bool)
}

type ArticleHandler struct {
	store ArticleStore
}

func NewArticleHandler(store ArticleStore) *ArticleHandler {
	return &ArticleHandler{store: store}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)
	biasThreshold := getQueryBiasThreshold(c)
	narrativeID := c.Query("narrative_id")

	articles := h.store.ListArticles(limit, offset, biasThreshold, narrativeID)

	res := make([]ArticleSummaryResponse, len(articles))
	for i, a := range articles {
		res[i] = toArticleSummaryResponse(a)
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	article, ok := h.store.GetArticle(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Article with ID %s not found", id)})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(*article))
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 50
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}

// getQueryBiasThreshold returns nil when the parameter is absent or
// unparsable; out-of-range values are clamped to [0, 100].
func getQueryBiasThreshold(c *gin.Context) *float64 {
	param := c.Query("bias_threshold")
	if param == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(param, 64)
	if err != nil {
		slog.Warn("invalid query parameter, ignoring", "param", "bias_threshold", "value", param, "error", err)
		return nil
	}

	if parsed < 0 {
		parsed = 0
	}
	if parsed > 100 {
		parsed = 100
	}

	return &parsed
}
