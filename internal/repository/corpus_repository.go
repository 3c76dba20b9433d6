package repository

import (
	"sort"

	"github.com/yushkumar524/BiasLabPrototype/internal/mock"
	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

// CorpusRepository serves read queries over a corpus generated once at
// startup. Nothing mutates after construction, so all methods are safe
// for concurrent use without locking.
type CorpusRepository struct {
	articles       []model.Article
	articlesByID   map[string]model.Article
	narratives     []model.Narrative
	narrativesByID map[string]model.Narrative
}

func NewCorpusRepository(articles []model.Article, narratives []model.Narrative) *CorpusRepository {
	articlesByID := make(map[string]model.Article, len(articles))
	for _, a := range articles {
		articlesByID[a.ID] = a
	}

	narrativesByID := make(map[string]model.Narrative, len(narratives))
	for _, n := range narratives {
		narrativesByID[n.ID] = n
	}

	return &CorpusRepository{
		articles:       articles,
		articlesByID:   articlesByID,
		narratives:     narratives,
		narrativesByID: narrativesByID,
	}
}

// ListArticles filters, sorts by publication date descending and paginates.
// biasThreshold keeps articles whose overall score is at or above it;
// narrativeID filters by exact match. Either filter may be unset.
func (r *CorpusRepository) ListArticles(limit, offset int, biasThreshold *float64, narrativeID string) []model.Article {
	var filtered []model.Article
	for _, a := range r.articles {
		if biasThreshold != nil && a.BiasScores.Overall < *biasThreshold {
			continue
		}
		if narrativeID != "" && a.NarrativeID != narrativeID {
			continue
		}
		filtered = append(filtered, a)
	}

	sortByDateDesc(filtered)

	if offset >= len(filtered) {
		return []model.Article{}
	}

	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end]
}

func (r *CorpusRepository) GetArticle(id string) (*model.Article, bool) {
	a, ok := r.articlesByID[id]
	if !ok {
		return nil, false
	}
	return &a, true
}

// ListNarratives returns all narratives sorted by last update descending.
func (r *CorpusRepository) ListNarratives() []model.Narrative {
	narratives := make([]model.Narrative, len(r.narratives))
	copy(narratives, r.narratives)

	sort.Slice(narratives, func(i, j int) bool {
		return narratives[i].LastUpdated.After(narratives[j].LastUpdated)
	})

	return narratives
}

func (r *CorpusRepository) GetNarrative(id string) (*model.Narrative, bool) {
	n, ok := r.narrativesByID[id]
	if !ok {
		return nil, false
	}
	return &n, true
}

// NarrativeArticles resolves a narrative's member ids to full articles,
// sorted by publication date descending. Member ids that resolve to no
// article are skipped rather than failing the call.
func (r *CorpusRepository) NarrativeArticles(id string) ([]model.Article, bool) {
	n, ok := r.narrativesByID[id]
	if !ok {
		return nil, false
	}

	articles := make([]model.Article, 0, len(n.ArticleIDs))
	for _, articleID := range n.ArticleIDs {
		if a, ok := r.articlesByID[articleID]; ok {
			articles = append(articles, a)
		}
	}

	sortByDateDesc(articles)
	return articles, true
}

// Stats computes corpus-wide aggregates. Returns nil when the corpus has
// no articles.
func (r *CorpusRepository) Stats() *model.CorpusStats {
	if len(r.articles) == 0 {
		return nil
	}

	sourceCounts := make(map[string]int)
	earliest := r.articles[0].PublishedDate
	latest := r.articles[0].PublishedDate
	for _, a := range r.articles {
		sourceCounts[a.Source]++
		if a.PublishedDate.Before(earliest) {
			earliest = a.PublishedDate
		}
		if a.PublishedDate.After(latest) {
			latest = a.PublishedDate
		}
	}

	return &model.CorpusStats{
		TotalArticles:   len(r.articles),
		TotalNarratives: len(r.narratives),
		AvgBiasScores:   mock.AverageScores(r.articles),
		SourceCounts:    sourceCounts,
		EarliestArticle: earliest,
		LatestArticle:   latest,
	}
}

// Totals reports corpus sizes for the health endpoint.
func (r *CorpusRepository) Totals() (articles, narratives int) {
	return len(r.articles), len(r.narratives)
}

func sortByDateDesc(articles []model.Article) {
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedDate.After(articles[j].PublishedDate)
	})
}
