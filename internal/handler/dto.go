package handler

import (
	"time"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

type BiasScoresResponse struct {
	Overall            float64 `json:"overall"`
	IdeologicalStance  float64 `json:"ideological_stance"`
	FactualGrounding   float64 `json:"factual_grounding"`
	FramingChoices     float64 `json:"framing_choices"`
	EmotionalTone      float64 `json:"emotional_tone"`
	SourceTransparency float64 `json:"source_transparency"`
}

type HighlightedPhraseResponse struct {
	Text       string  `json:"text"`
	StartPos   int     `json:"start_pos"`
	EndPos     int     `json:"end_pos"`
	BiasType   string  `json:"bias_type"`
	Confidence float64 `json:"confidence"`
	Color      string  `json:"color"`
}

type ArticleSummaryResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Source        string             `json:"source"`
	PublishedDate string             `json:"published_date"`
	BiasScores    BiasScoresResponse `json:"bias_scores"`
	NarrativeID   string             `json:"narrative_id,omitempty"`
}

type ArticleResponse struct {
	ID                 string                      `json:"id"`
	Title              string                      `json:"title"`
	Content            string                      `json:"content"`
	Source             string                      `json:"source"`
	Author             string                      `json:"author,omitempty"`
	PublishedDate      string                      `json:"published_date"`
	URL                string                      `json:"url"`
	BiasScores         BiasScoresResponse          `json:"bias_scores"`
	HighlightedPhrases []HighlightedPhraseResponse `json:"highlighted_phrases"`
	NarrativeID        string                      `json:"narrative_id,omitempty"`
}

type TimePointResponse struct {
	Timestamp    string             `json:"timestamp"`
	BiasScores   BiasScoresResponse `json:"bias_scores"`
	ArticleCount int                `json:"article_count"`
}

type NarrativeSummaryResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	ArticleCount  int                `json:"article_count"`
	AvgBiasScores BiasScoresResponse `json:"avg_bias_scores"`
	LastUpdated   string             `json:"last_updated"`
}

type NarrativeResponse struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	ArticleIDs      []string            `json:"article_ids"`
	DominantFraming string              `json:"dominant_framing"`
	ArticleCount    int                 `json:"article_count"`
	AvgBiasScores   BiasScoresResponse  `json:"avg_bias_scores"`
	CreatedDate     string              `json:"created_date"`
	LastUpdated     string              `json:"last_updated"`
	BiasEvolution   []TimePointResponse `json:"bias_evolution"`
}

type StatsResponse struct {
	TotalArticles      int                `json:"total_articles"`
	TotalNarratives    int                `json:"total_narratives"`
	AverageBiasScores  BiasScoresResponse `json:"average_bias_scores"`
	SourceDistribution map[string]int     `json:"source_distribution"`
	TimeRange          TimeRangeResponse  `json:"time_range"`
}

type TimeRangeResponse struct {
	EarliestArticle string `json:"earliest_article"`
	LatestArticle   string `json:"latest_article"`
}

func toBiasScoresResponse(s model.BiasScores) BiasScoresResponse {
	return BiasScoresResponse{
		Overall:            s.Overall,
		IdeologicalStance:  s.IdeologicalStance,
		FactualGrounding:   s.FactualGrounding,
		FramingChoices:     s.FramingChoices,
		EmotionalTone:      s.EmotionalTone,
		SourceTransparency: s.SourceTransparency,
	}
}

func toArticleSummaryResponse(a model.Article) ArticleSummaryResponse {
	return ArticleSummaryResponse{
		ID:            a.ID,
		Title:         a.Title,
		Source:        a.Source,
		PublishedDate: a.PublishedDate.Format(time.RFC3339),
		BiasScores:    toBiasScoresResponse(a.BiasScores),
		NarrativeID:   a.NarrativeID,
	}
}

func toArticleResponse(a model.Article) ArticleResponse {
	phrases := make([]HighlightedPhraseResponse, len(a.Highlights))
	for i, p := range a.Highlights {
		phrases[i] = HighlightedPhraseResponse{
			Text:       p.Text,
			StartPos:   p.StartPos,
			EndPos:     p.EndPos,
			BiasType:   p.BiasType,
			Confidence: p.Confidence,
			Color:      p.Color,
		}
	}

	return ArticleResponse{
		ID:                 a.ID,
		Title:              a.Title,
		Content:            a.Content,
		Source:             a.Source,
		Author:             a.Author,
		PublishedDate:      a.PublishedDate.Format(time.RFC3339),
		URL:                a.URL,
		BiasScores:         toBiasScoresResponse(a.BiasScores),
		HighlightedPhrases: phrases,
		NarrativeID:        a.NarrativeID,
	}
}

func toTimePointResponse(p model.TimePoint) TimePointResponse {
	return TimePointResponse{
		Timestamp:    p.Timestamp.Format(time.RFC3339),
		BiasScores:   toBiasScoresResponse(p.BiasScores),
		ArticleCount: p.ArticleCount,
	}
}

func toNarrativeSummaryResponse(n model.Narrative) NarrativeSummaryResponse {
	return NarrativeSummaryResponse{
		ID:            n.ID,
		Title:         n.Title,
		Description:   n.Description,
		ArticleCount:  n.ArticleCount,
		AvgBiasScores: toBiasScoresResponse(n.AvgBiasScores),
		LastUpdated:   n.LastUpdated.Format(time.RFC3339),
	}
}

func toNarrativeResponse(n model.Narrative) NarrativeResponse {
	evolution := make([]TimePointResponse, len(n.BiasEvolution))
	for i, p := range n.BiasEvolution {
		evolution[i] = toTimePointResponse(p)
	}

	return NarrativeResponse{
		ID:              n.ID,
		Title:           n.Title,
		Description:     n.Description,
		ArticleIDs:      n.ArticleIDs,
		DominantFraming: n.DominantFraming,
		ArticleCount:    n.ArticleCount,
		AvgBiasScores:   toBiasScoresResponse(n.AvgBiasScores),
		CreatedDate:     n.CreatedDate.Format(time.RFC3339),
		LastUpdated:     n.LastUpdated.Format(time.RFC3339),
		BiasEvolution:   evolution,
	}
}
