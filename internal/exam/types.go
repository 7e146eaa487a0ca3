package exam

// Level is the exam tier governing the difficulty band and score range.
type Level string

const (
	LevelElementary Level = "elementary"
	LevelMiddle     Level = "middle"
)

// QuestionType tags a question's topic. Used both for content selection
// and for per-topic mastery tracking.
type QuestionType string

const (
	TypeSynonym              QuestionType = "synonym"
	TypeAnalogy              QuestionType = "analogy"
	TypeArithmetic           QuestionType = "arithmetic"
	TypeAlgebra              QuestionType = "algebra"
	TypeGeometry             QuestionType = "geometry"
	TypeWordProblem          QuestionType = "word_problem"
	TypeReadingComprehension QuestionType = "reading_comprehension"
)

// SessionMode identifies what kind of practice run a session is.
type SessionMode string

const (
	ModeFullTest        SessionMode = "full_test"
	ModeSectionPractice SessionMode = "section_practice"
	ModeQuickDrill      SessionMode = "quick_drill"
	ModeReview          SessionMode = "review"
)

// Category is the score-report grouping a section folds into.
type Category string

const (
	CategoryVerbal       Category = "verbal"
	CategoryQuantitative Category = "quantitative"
	CategoryReading      Category = "reading"
)

// AllTypes lists every question type that can be generated.
var AllTypes = []QuestionType{
	TypeSynonym, TypeAnalogy, TypeArithmetic, TypeAlgebra,
	TypeGeometry, TypeWordProblem, TypeReadingComprehension,
}

// typeDisplay maps question types to user-facing names.
var typeDisplay = map[QuestionType]string{
	TypeSynonym:              "Synonyms",
	TypeAnalogy:              "Analogies",
	TypeArithmetic:           "Arithmetic",
	TypeAlgebra:              "Algebra",
	TypeGeometry:             "Geometry",
	TypeWordProblem:          "Word Problems",
	TypeReadingComprehension: "Reading Comprehension",
}

// DisplayName returns the user-facing name for a question type.
func DisplayName(t QuestionType) string {
	if name, ok := typeDisplay[t]; ok {
		return name
	}
	return string(t)
}

// DrillCategories groups topics for quick-drill selection, in menu order.
var DrillCategories = []struct {
	Name   string
	Topics []QuestionType
}{
	{"Math", []QuestionType{TypeArithmetic, TypeAlgebra, TypeGeometry, TypeWordProblem}},
	{"Verbal", []QuestionType{TypeSynonym, TypeAnalogy}},
	{"Reading", []QuestionType{TypeReadingComprehension}},
}
