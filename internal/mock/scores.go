package mock

import (
	"math"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

// TopicModifier shifts individual dimensions for a particular story angle,
// keyed by dimension name.
type TopicModifier map[string]float64

// BiasScores builds a score set for an article from the given source.
// Unknown sources fall back to the default baseline instead of failing.
func (g *Generator) BiasScores(source string, modifier TopicModifier) model.BiasScores {
	base, ok := newsSources[source]
	if !ok {
		base = defaultBaseline
	}

	stance := base.IdeologicalStance + float64(g.randBetween(-10, 10))
	factual := clamp(base.FactualGrounding+float64(g.randBetween(-15, 15)), 0, 100)
	emotional := clamp(base.EmotionalTone+float64(g.randBetween(-10, 20)), 0, 100)
	framing := clamp(base.FramingChoices+float64(g.randBetween(-10, 15)), 0, 100)
	transparency := clamp(base.SourceTransparency+float64(g.randBetween(-10, 15)), 0, 100)

	if modifier != nil {
		stance += modifier[model.DimIdeologicalStance]
		emotional += modifier[model.DimEmotionalTone]
		factual += modifier[model.DimFactualGrounding]
		framing += modifier[model.DimFramingChoices]
		transparency += modifier[model.DimSourceTransparency]
	}

	stance = clamp(stance, -100, 100)
	emotional = clamp(emotional, 0, 100)
	factual = clamp(factual, 0, 100)
	framing = clamp(framing, 0, 100)
	transparency = clamp(transparency, 0, 100)

	overall := Overall(stance, factual, framing, emotional, transparency)

	return model.BiasScores{
		Overall:            round1(overall),
		IdeologicalStance:  round1(stance),
		FactualGrounding:   round1(factual),
		FramingChoices:     round1(framing),
		EmotionalTone:      round1(emotional),
		SourceTransparency: round1(transparency),
	}
}

// Overall combines the five dimensions into a single 0-100 bias score.
// Each dimension contributes its "badness": absolute value for the signed
// stance, the raw value for emotional tone and framing, and the distance
// from 100 for the two higher-is-better dimensions.
func Overall(stance, factual, framing, emotional, transparency float64) float64 {
	return (math.Abs(stance) + emotional + (100 - factual) + framing + (100 - transparency)) / 5
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
