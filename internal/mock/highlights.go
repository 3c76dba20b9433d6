package mock

import (
	"strings"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

const maxHighlights = 5

type biasPhrase struct {
	Text     string
	BiasType string
}

// Literal phrases scanned for in article bodies, grouped by dimension.
// Scan order is table order, not occurrence order in the text.
var biasPhrases = []biasPhrase{
	{"devastating blow", model.DimIdeologicalStance},
	{"radical agenda", model.DimIdeologicalStance},
	{"common-sense solution", model.DimIdeologicalStance},
	{"extreme measures", model.DimIdeologicalStance},
	{"failed policies", model.DimIdeologicalStance},

	{"shocking revelation", model.DimEmotionalTone},
	{"catastrophic", model.DimEmotionalTone},
	{"unprecedented crisis", model.DimEmotionalTone},
	{"explosive", model.DimEmotionalTone},
	{"dramatic surge", model.DimEmotionalTone},

	{"sources claim", model.DimFactualGrounding},
	{"allegedly", model.DimFactualGrounding},
	{"reportedly", model.DimFactualGrounding},
	{"critics argue", model.DimFactualGrounding},

	{"under fire", model.DimFramingChoices},
	{"faces backlash", model.DimFramingChoices},
	{"controversial", model.DimFramingChoices},
	{"defended their position", model.DimFramingChoices},

	{"anonymous sources", model.DimSourceTransparency},
	{"unnamed officials", model.DimSourceTransparency},
	{"according to reports", model.DimSourceTransparency},
	{"leaked documents", model.DimSourceTransparency},
}

// Highlights finds bias phrases in the article body via case-insensitive
// substring search. Offsets index the original-case text; at most 5
// phrases are returned, in table-scan order.
func (g *Generator) Highlights(content string) []model.HighlightedPhrase {
	lower := strings.ToLower(content)

	var phrases []model.HighlightedPhrase
	for _, p := range biasPhrases {
		start := strings.Index(lower, strings.ToLower(p.Text))
		if start == -1 {
			continue
		}

		phrases = append(phrases, model.HighlightedPhrase{
			Text:       p.Text,
			StartPos:   start,
			EndPos:     start + len(p.Text),
			BiasType:   p.BiasType,
			Confidence: 0.7 + g.rng.Float64()*0.25,
			Color:      biasColors[p.BiasType],
		})
	}

	if len(phrases) > maxHighlights {
		phrases = phrases[:maxHighlights]
	}
	return phrases
}
