package mock

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/yushkumar524/BiasLabPrototype/internal/model"
)

func inRange(t *testing.T, name string, v, lo, hi float64) {
	t.Helper()
	if v < lo || v > hi {
		t.Errorf("%s = %v, want within [%v, %v]", name, v, lo, hi)
	}
}

func checkBounds(t *testing.T, s model.BiasScores) {
	t.Helper()
	inRange(t, "overall", s.Overall, 0, 100)
	inRange(t, "ideological_stance", s.IdeologicalStance, -100, 100)
	inRange(t, "factual_grounding", s.FactualGrounding, 0, 100)
	inRange(t, "framing_choices", s.FramingChoices, 0, 100)
	inRange(t, "emotional_tone", s.EmotionalTone, 0, 100)
	inRange(t, "source_transparency", s.SourceTransparency, 0, 100)
}

func TestBiasScores_Bounds(t *testing.T) {
	g := NewGenerator(1)

	sources := []string{"CNN", "Fox News", "Reuters", "Associated Press", "Some Unknown Blog"}
	for i := 0; i < 200; i++ {
		for _, source := range sources {
			checkBounds(t, g.BiasScores(source, nil))
		}
	}
}

func TestBiasScores_BoundsWithExtremeModifier(t *testing.T) {
	g := NewGenerator(2)

	modifier := TopicModifier{
		model.DimIdeologicalStance:  500,
		model.DimFactualGrounding:   -500,
		model.DimFramingChoices:     500,
		model.DimEmotionalTone:      500,
		model.DimSourceTransparency: -500,
	}

	for i := 0; i < 50; i++ {
		s := g.BiasScores("Fox News", modifier)
		checkBounds(t, s)
		assert.Equal(t, 100.0, s.IdeologicalStance)
		assert.Equal(t, 0.0, s.FactualGrounding)
	}
}

func TestBiasScores_OverallFormula(t *testing.T) {
	g := NewGenerator(3)

	for i := 0; i < 100; i++ {
		s := g.BiasScores("BBC", nil)
		want := round1(Overall(s.IdeologicalStance, s.FactualGrounding, s.FramingChoices, s.EmotionalTone, s.SourceTransparency))
		assert.Equal(t, want, s.Overall)
	}
}

func TestBiasScores_UnknownSourceUsesDefault(t *testing.T) {
	g := NewGenerator(4)

	// Default baseline plus max jitter in either direction.
	for i := 0; i < 100; i++ {
		s := g.BiasScores("Totally Made Up Herald", nil)
		inRange(t, "ideological_stance", s.IdeologicalStance, -10, 10)
		inRange(t, "factual_grounding", s.FactualGrounding, 60, 90)
		inRange(t, "emotional_tone", s.EmotionalTone, 20, 50)
		inRange(t, "framing_choices", s.FramingChoices, 25, 50)
		inRange(t, "source_transparency", s.SourceTransparency, 60, 85)
	}
}

func TestBiasScores_Deterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.BiasScores("CNN", nil), b.BiasScores("CNN", nil))
	}
}

func TestOverall_KnownValues(t *testing.T) {
	// Perfectly neutral, factual and transparent reporting scores zero.
	assert.Equal(t, 0.0, Overall(0, 100, 0, 0, 100))
	// Worst case in every dimension.
	assert.Equal(t, 100.0, Overall(-100, 0, 100, 100, 0))
	assert.Equal(t, 50.0, Overall(50, 50, 50, 50, 50))
}
