package exam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigForLevel(t *testing.T) {
	elem, ok := ConfigForLevel(LevelElementary)
	require.True(t, ok)
	assert.Equal(t, 300, elem.ScoreMin)
	assert.Equal(t, 600, elem.ScoreMax)
	assert.False(t, elem.HasPenalty)
	assert.Len(t, elem.Sections, 3)

	mid, ok := ConfigForLevel(LevelMiddle)
	require.True(t, ok)
	assert.Equal(t, 440, mid.ScoreMin)
	assert.Equal(t, 710, mid.ScoreMax)
	assert.True(t, mid.HasPenalty)
	assert.Equal(t, 0.25, mid.PenaltyAmount)
	assert.Len(t, mid.Sections, 4)

	_, ok = ConfigForLevel(Level("upper"))
	assert.False(t, ok)
}

func TestSectionTopicsMatchSplit(t *testing.T) {
	for _, level := range []Level{LevelElementary, LevelMiddle} {
		cfg, ok := ConfigForLevel(level)
		require.True(t, ok)
		for _, sec := range cfg.Sections {
			switch sec.Split {
			case SplitHalf:
				assert.Len(t, sec.Topics, 2, "%s/%s", level, sec.Name)
			case SplitSingle:
				assert.Len(t, sec.Topics, 1, "%s/%s", level, sec.Name)
			case SplitEven:
				assert.NotEmpty(t, sec.Topics, "%s/%s", level, sec.Name)
			}
		}
	}
}

func TestLevelForGrade(t *testing.T) {
	tests := []struct {
		grade int
		want  Level
	}{
		{3, LevelElementary},
		{4, LevelElementary},
		{5, LevelMiddle},
		{7, LevelMiddle},
		{8, LevelMiddle}, // upper grades use the middle format
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForGrade(tt.grade), "grade %d", tt.grade)
	}
}

func TestTypesForLevel(t *testing.T) {
	assert.NotContains(t, TypesForLevel(LevelElementary), TypeAlgebra)
	assert.Contains(t, TypesForLevel(LevelMiddle), TypeAlgebra)
	assert.Equal(t, AllTypes, TypesForLevel(LevelMiddle))
}

func TestCategoryForSection(t *testing.T) {
	tests := []struct {
		section string
		want    Category
	}{
		{"Math", CategoryQuantitative},
		{"Quantitative 1", CategoryQuantitative},
		{"Quantitative 2", CategoryQuantitative},
		{"Verbal", CategoryVerbal},
		{"Reading", CategoryReading},
		{"Mystery", CategoryVerbal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryForSection(tt.section), tt.section)
	}
}

func TestDrillCategoriesCoverAllTypes(t *testing.T) {
	seen := map[QuestionType]bool{}
	for _, cat := range DrillCategories {
		for _, topic := range cat.Topics {
			seen[topic] = true
		}
	}
	for _, topic := range AllTypes {
		assert.True(t, seen[topic], "topic %s missing from drill categories", topic)
	}
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("SSAT_TIMER_ENABLED", "false")
	t.Setenv("SSAT_QUESTIONS_PER_BATCH", "40")
	t.Setenv("SSAT_MIN_POOL_SIZE", "5")

	s := SettingsFromEnv()
	assert.False(t, s.TimerEnabled)
	assert.Equal(t, 40, s.QuestionsPerBatch)
	assert.Equal(t, 5, s.MinPoolSize)

	// Unset values keep their defaults.
	def := DefaultSettings()
	assert.Equal(t, def.DrillMaxQuestions, s.DrillMaxQuestions)
	assert.Equal(t, def.UpThreshold, s.UpThreshold)
}
