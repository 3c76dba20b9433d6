package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

type NarrativeStore interface {
	ListNarratives() []model.Narrative
	GetNarrative(id string) (*model.Narrative, bool)
	NarrativeArticles(id string) ([]model.Article, bool)
}

type NarrativeHandler struct {
	store NarrativeStore
}

func NewNarrativeHandler(store NarrativeStore) *NarrativeHandler {
	return &NarrativeHandler{store: store}
}

func (h *NarrativeHandler) GetNarratives(c *gin.Context) {
	narratives := h.store.ListNarratives()

	res := make([]NarrativeSummaryResponse, len(narratives))
	for i, n := range narratives {
		res[i] = toNarrativeSummaryResponse(n)
	}

	c.JSON(http.StatusOK, res)
}

func (h *NarrativeHandler) GetNarrative(c *gin.Context) {
	id := c.Param("id")

	narrative, ok := h.store.GetNarrative(id)
	if !ok {
		c.JSON(http.StatusNotFound, narrativeNotFound(id))
		return
	}

	c.JSON(http.StatusOK, toNarrativeResponse(*narrative))
}

func (h *NarrativeHandler) GetNarrativeTimeline(c *gin.Context) {
	id := c.Param("id")

	narrative, ok := h.store.GetNarrative(id)
	if !ok {
		c.JSON(http.StatusNotFound, narrativeNotFound(id))
		return
	}

	res := make([]TimePointResponse, len(narrative.BiasEvolution))
	for i, p := range narrative.BiasEvolution {
		res[i] = toTimePointResponse(p)
	}

	c.JSON(http.StatusOK, res)
}

func (h *NarrativeHandler) GetNarrativeArticles(c *gin.Context) {
	id := c.Param("id")

	articles, ok := h.store.NarrativeArticles(id)
	if !ok {
		c.JSON(http.StatusNotFound, narrativeNotFound(id))
		return
	}

	res := make([]ArticleSummaryResponse, len(articles))
	for i, a := range articles {
		res[i] = toArticleSummaryResponse(a)
	}

	c.JSON(http.StatusOK, res)
}

func narrativeNotFound(id string) gin.H {
	return gin.H{"error": fmt.Sprintf("Narrative with ID %s not found", id)}
}
