package exam

// SplitStrategy selects how a section's question count is distributed
// across its topics.
type SplitStrategy int

const (
	// SplitEven divides the count evenly, remainder to the first topic.
	SplitEven SplitStrategy = iota
	// SplitHalf divides 50/50 between two topics, remainder to the second.
	SplitHalf
	// SplitSingle routes the entire count to the section's only topic.
	SplitSingle
)

// SectionConfig describes one timed block of an exam.
type SectionConfig struct {
	Name          string
	QuestionCount int
	TimeMinutes   int
	Topics        []QuestionType
	Split         SplitStrategy
}

// LevelConfig is the static structure of one exam tier.
type LevelConfig struct {
	Level              Level
	DisplayName        string
	GradeMin           int
	GradeMax           int
	Sections           []SectionConfig
	ScoreMin           int // per-section scaled score floor
	ScoreMax           int // per-section scaled score ceiling
	HasPenalty         bool
	PenaltyAmount      float64
	WritingTimeMinutes int
}

var elementarySections = []SectionConfig{
	{Name: "Math", QuestionCount: 30, TimeMinutes: 30, Topics: []QuestionType{TypeArithmetic, TypeGeometry, TypeWordProblem}, Split: SplitEven},
	{Name: "Verbal", QuestionCount: 30, TimeMinutes: 20, Topics: []QuestionType{TypeSynonym, TypeAnalogy}, Split: SplitHalf},
	{Name: "Reading", QuestionCount: 28, TimeMinutes: 30, Topics: []QuestionType{TypeReadingComprehension}, Split: SplitSingle},
}

var middleSections = []SectionConfig{
	{Name: "Quantitative 1", QuestionCount: 25, TimeMinutes: 30, Topics: []QuestionType{TypeArithmetic, TypeAlgebra, TypeGeometry}, Split: SplitEven},
	{Name: "Reading", QuestionCount: 40, TimeMinutes: 40, Topics: []QuestionType{TypeReadingComprehension}, Split: SplitSingle},
	{Name: "Verbal", QuestionCount: 60, TimeMinutes: 30, Topics: []QuestionType{TypeSynonym, TypeAnalogy}, Split: SplitHalf},
	{Name: "Quantitative 2", QuestionCount: 25, TimeMinutes: 30, Topics: []QuestionType{TypeArithmetic, TypeAlgebra, TypeGeometry}, Split: SplitEven},
}

var levelConfigs = map[Level]LevelConfig{
	LevelElementary: {
		Level:              LevelElementary,
		DisplayName:        "Elementary Level",
		GradeMin:           3,
		GradeMax:           4,
		Sections:           elementarySections,
		ScoreMin:           300,
		ScoreMax:           600,
		HasPenalty:         false,
		PenaltyAmount:      0,
		WritingTimeMinutes: 15,
	},
	LevelMiddle: {
		Level:              LevelMiddle,
		DisplayName:        "Middle Level",
		GradeMin:           5,
		GradeMax:           7,
		Sections:           middleSections,
		ScoreMin:           440,
		ScoreMax:           710,
		HasPenalty:         true,
		PenaltyAmount:      0.25,
		WritingTimeMinutes: 25,
	},
}

// LevelForGrade maps a grade onto its exam tier. Grades above the
// middle range still use the middle format.
func LevelForGrade(grade int) Level {
	if grade <= levelConfigs[LevelElementary].GradeMax {
		return LevelElementary
	}
	return LevelMiddle
}

// ConfigForLevel returns the level's static configuration.
func ConfigForLevel(level Level) (LevelConfig, bool) {
	cfg, ok := levelConfigs[level]
	return cfg, ok
}

// TypesForLevel returns the question types relevant to a level.
// Elementary has no algebra.
func TypesForLevel(level Level) []QuestionType {
	if level == LevelElementary {
		return []QuestionType{
			TypeSynonym, TypeAnalogy, TypeArithmetic,
			TypeGeometry, TypeWordProblem, TypeReadingComprehension,
		}
	}
	return AllTypes
}

// CategoryForSection maps a section name onto its score-report category.
func CategoryForSection(name string) Category {
	switch {
	case containsFold(name, "verbal"):
		return CategoryVerbal
	case containsFold(name, "quant"), containsFold(name, "math"):
		return CategoryQuantitative
	case containsFold(name, "reading"):
		return CategoryReading
	}
	return CategoryVerbal
}
