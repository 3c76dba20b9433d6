package mock

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

// Generator synthesizes the mock corpus. All randomness flows through the
// embedded rng so a fixed seed reproduces the same corpus.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed)),
		now: time.Now().UTC(),
	}
}

// randBetween returns a uniform int in [lo, hi], bounds inclusive.
func (g *Generator) randBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// Articles builds the full article corpus from the static templates.
func (g *Generator) Articles() []model.Article {
	var articles []model.Article
	baseTime := g.now.Add(-3 * 24 * time.Hour)

	for _, narrative := range articleTemplates {
		for i, tmpl := range narrative.Articles {
			id := uuid.NewString()
			published := baseTime.Add(time.Duration(i*8+g.randBetween(0, 120)) * time.Hour)

			scores := g.BiasScores(tmpl.Source, tmpl.TopicModifier)

			articles = append(articles, model.Article{
				ID:            id,
				Title:         tmpl.Title,
				Content:       tmpl.Content,
				Source:        tmpl.Source,
				Author:        fmt.Sprintf("Reporter %d", g.randBetween(1, 50)),
				PublishedDate: published,
				URL:           articleURL(tmpl.Source, id),
				BiasScores:    scores,
				Highlights:    g.Highlights(tmpl.Content),
				NarrativeID:   narrative.NarrativeID,
			})
		}
	}

	return articles
}

func articleURL(source, id string) string {
	host := strings.ReplaceAll(strings.ToLower(source), " ", "")
	return fmt.Sprintf("https://%s.com/article/%s", host, id[:8])
}

// Narratives derives narrative clusters from the article corpus. Catalog
// entries with no matching articles are omitted.
func (g *Generator) Narratives(articles []model.Article) []model.Narrative {
	var narratives []model.Narrative

	for narrativeID, info := range narrativeCatalog {
		var members []model.Article
		for _, a := range articles {
			if a.NarrativeID == narrativeID {
				members = append(members, a)
			}
		}

		if len(members) == 0 {
			continue
		}

		sort.Slice(members, func(i, j int) bool {
			return members[i].PublishedDate.Before(members[j].PublishedDate)
		})

		evolution := make([]model.TimePoint, len(members))
		articleIDs := make([]string, len(members))
		for i, a := range members {
			evolution[i] = model.TimePoint{
				Timestamp:    a.PublishedDate,
				BiasScores:   a.BiasScores,
				ArticleCount: i + 1,
			}
			articleIDs[i] = a.ID
		}

		narratives = append(narratives, model.Narrative{
			ID:              narrativeID,
			Title:           info.Title,
			Description:     info.Description,
			ArticleIDs:      articleIDs,
			DominantFraming: info.DominantFraming,
			ArticleCount:    len(members),
			AvgBiasScores:   AverageScores(members),
			CreatedDate:     members[0].PublishedDate,
			LastUpdated:     members[len(members)-1].PublishedDate,
			BiasEvolution:   evolution,
		})
	}

	sort.Slice(narratives, func(i, j int) bool {
		return narratives[i].ID < narratives[j].ID
	})

	return narratives
}

// AverageScores is the per-dimension arithmetic mean over the given
// articles, rounded to one decimal.
func AverageScores(articles []model.Article) model.BiasScores {
	var sum model.BiasScores
	for _, a := range articles {
		sum.Overall += a.BiasScores.Overall
		sum.IdeologicalStance += a.BiasScores.IdeologicalStance
		sum.FactualGrounding += a.BiasScores.FactualGrounding
		sum.FramingChoices += a.BiasScores.FramingChoices
		sum.EmotionalTone += a.BiasScores.EmotionalTone
		sum.SourceTransparency += a.BiasScores.SourceTransparency
	}

	n := float64(len(articles))
	return model.BiasScores{
		Overall:            round1(sum.Overall / n),
		IdeologicalStance:  round1(sum.IdeologicalStance / n),
		FactualGrounding:   round1(sum.FactualGrounding / n),
		FramingChoices:     round1(sum.FramingChoices / n),
		EmotionalTone:      round1(sum.EmotionalTone / n),
		SourceTransparency: round1(sum.SourceTransparency / n),
	}
}
