package model

import "time"

// Bias dimension names, used as highlight tags and score keys.
const (
	DimIdeologicalStance  = "ideological_stance"
	DimFactualGrounding   = "factual_grounding"
	DimFramingChoices     = "framing_choices"
	DimEmotionalTone      = "emotional_tone"
	DimSourceTransparency = "source_transparency"
)

// BiasScores holds one score per bias dimension. Ideological stance runs
// from -100 (left) to 100 (right); every other dimension runs 0-100.
// Overall is always derived from the other five, never set independently.
type BiasScores struct {
	Overall            float64
	IdeologicalStance  float64
	FactualGrounding   float64
	FramingChoices     float64
	EmotionalTone      float64
	SourceTransparency float64
}

// HighlightedPhrase marks a biased phrase inside an article body.
// Offsets index into the original-case text.
type HighlightedPhrase struct {
	Text       string
	StartPos   int
	EndPos     int
	BiasType   string
	Confidence float64
	Color      string
}

type Article struct {
	ID            string
	Title         string
	Content       string
	Source        string
	Author        string
	PublishedDate time.Time
	URL           string
	BiasScores    BiasScores
	Highlights    []HighlightedPhrase
	NarrativeID   string
}
