package mock

import "github.com/yushkumar524/BiasLabPrototype/internal/model"

// Highlight colors per bias dimension.
var biasColors = map[string]string{
	model.DimIdeologicalStance:  "#ff6b6b",
	model.DimFactualGrounding:   "#48dbfb",
	model.DimFramingChoices:     "#feca57",
	model.DimEmotionalTone:      "#ff9ff3",
	model.DimSourceTransparency: "#54a0ff",
}

// sourceBaseline is the typical bias profile of an outlet before jitter
// and topic modifiers are applied.
type sourceBaseline struct {
	IdeologicalStance  float64
	FactualGrounding   float64
	EmotionalTone      float64
	FramingChoices     float64
	SourceTransparency float64
}

var newsSources = map[string]sourceBaseline{
	"CNN":                 {IdeologicalStance: -25, FactualGrounding: 75, EmotionalTone: 35, FramingChoices: 40, SourceTransparency: 70},
	"Fox News":            {IdeologicalStance: 45, FactualGrounding: 65, EmotionalTone: 55, FramingChoices: 50, SourceTransparency: 60},
	"Reuters":             {IdeologicalStance: 5, FactualGrounding: 90, EmotionalTone: 15, FramingChoices: 20, SourceTransparency: 85},
	"BBC":                 {IdeologicalStance: -10, FactualGrounding: 85, EmotionalTone: 20, FramingChoices: 25, SourceTransparency: 80},
	"Wall Street Journal": {IdeologicalStance: 20, FactualGrounding: 80, EmotionalTone: 25, FramingChoices: 30, SourceTransparency: 75},
	"The Guardian":        {IdeologicalStance: -35, FactualGrounding: 70, EmotionalTone: 40, FramingChoices: 45, SourceTransparency: 65},
	"Associated Press":    {IdeologicalStance: 0, FactualGrounding: 95, EmotionalTone: 10, FramingChoices: 15, SourceTransparency: 90},
	"New York Times":      {IdeologicalStance: -20, FactualGrounding: 80, EmotionalTone: 30, FramingChoices: 35, SourceTransparency: 75},
}

// defaultBaseline is used for sources not in the table.
var defaultBaseline = sourceBaseline{
	IdeologicalStance:  0,
	FactualGrounding:   75,
	EmotionalTone:      30,
	FramingChoices:     35,
	SourceTransparency: 70,
}
