package model

import "time"

// TimePoint is one step in a narrative's bias evolution: the scores of the
// article published at that moment plus the running member count.
type TimePoint struct {
	Timestamp    time.Time
	BiasScores   BiasScores
	ArticleCount int
}

type Narrative struct {
	ID              string
	Title           string
	Description     string
	ArticleIDs      []string
	DominantFraming string
	ArticleCount    int
	AvgBiasScores   BiasScores
	CreatedDate     time.Time
	LastUpdated     time.Time
	BiasEvolution   []TimePoint
}

// CorpusStats summarizes the whole corpus for the stats endpoint.
type CorpusStats struct {
	TotalArticles   int
	TotalNarratives int
	AvgBiasScores   BiasScores
	SourceCounts    map[string]int
	EarliestArticle time.Time
	LatestArticle   time.Time
}
