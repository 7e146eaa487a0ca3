package exam

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings carries the tunable knobs of the engine. It is constructed
// once at startup and passed into the runner, cache, and leveling engine
// rather than living in package-level mutable state.
type Settings struct {
	// Timer
	TimerEnabled bool

	// Question pool
	QuestionsPerBatch   int           // ordinary generation batch size
	MinPoolSize         int           // replenish when unseen falls below this
	QuestionsPerPassage int           // reading comprehension shape
	RateLimit           time.Duration // min spacing between generation calls

	// Adaptive difficulty
	DifficultyMin         float64
	DifficultyMax         float64
	DifficultyDefault     float64
	DifficultyStep        float64
	UpThreshold           float64 // batch accuracy needed to step up
	DownThreshold         float64 // batch accuracy triggering step down
	MinQuestionsForAdjust int

	// Level mastery / demotion
	MasteryPercentile   int
	MasteryTestCount    int
	MasteryAccuracy     float64
	MasteryMinQuestions int
	LevelDownPercentile int
	LevelDownTestCount  int

	// Quick drill
	DrillMinQuestions     int
	DrillMaxQuestions     int
	DrillDefaultQuestions int

	// Percentile tables override; empty means the embedded asset.
	PercentileTablesPath string
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	return Settings{
		TimerEnabled:          true,
		QuestionsPerBatch:     25,
		MinPoolSize:           10,
		QuestionsPerPassage:   4,
		RateLimit:             time.Second,
		DifficultyMin:         1.0,
		DifficultyMax:         5.0,
		DifficultyDefault:     3.0,
		DifficultyStep:        0.5,
		UpThreshold:           0.85,
		DownThreshold:         0.50,
		MinQuestionsForAdjust: 5,
		MasteryPercentile:     85,
		MasteryTestCount:      3,
		MasteryAccuracy:       0.85,
		MasteryMinQuestions:   20,
		LevelDownPercentile:   40,
		LevelDownTestCount:    2,
		DrillMinQuestions:     10,
		DrillMaxQuestions:     20,
		DrillDefaultQuestions: 10,
	}
}

// SettingsFromEnv builds Settings from environment variables, falling
// back to defaults for unset values.
func SettingsFromEnv() Settings {
	s := DefaultSettings()

	if v := os.Getenv("SSAT_TIMER_ENABLED"); v != "" {
		s.TimerEnabled = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("SSAT_QUESTIONS_PER_BATCH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.QuestionsPerBatch = n
		}
	}
	if v := os.Getenv("SSAT_MIN_POOL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.MinPoolSize = n
		}
	}
	if v := os.Getenv("SSAT_PERCENTILE_TABLES"); v != "" {
		s.PercentileTablesPath = v
	}

	return s
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}
