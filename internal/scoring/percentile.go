package scoring

import (
	_ "embed"
	"encoding/json"
	"math"
	"os"
	"strconv"

	"github.com/shailiguru/ssat-practice/internal/exam"
)

//go:embed percentile_tables.json
var defaultTables []byte

// Tables maps level -> section name -> grade -> ascending
// (score, percentile) breakpoints.
type Tables map[string]map[string]map[string][][]int

// LoadTables reads percentile tables from path, or the embedded
// default when path is empty. A missing or malformed file returns a
// nil Tables, which degrades every lookup to the fallback formula.
func LoadTables(path string) Tables {
	data := defaultTables
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		data = b
	}

	var t Tables
	if err := json.Unmarshal(data, &t); err != nil {
		return nil
	}
	return t
}

// Percentile estimates the percentile for a scaled score using the
// grade's breakpoint table. Scores at or below the first breakpoint
// map to its percentile, at or above the last to its percentile, and
// anything between is linearly interpolated. When the exact grade has
// no table, neighboring grades are searched before falling back to
// the table-free estimate. The result is always in 1..99.
func (t Tables) Percentile(scaled int, level exam.Level, section string, grade int) int {
	if t == nil {
		return fallbackPercentile(scaled, level)
	}

	sectionData := t[string(level)][section]
	gradeData := sectionData[strconv.Itoa(grade)]
	if len(gradeData) == 0 {
		for g := grade - 1; g <= grade+1; g++ {
			gradeData = sectionData[strconv.Itoa(g)]
			if len(gradeData) > 0 {
				break
			}
		}
	}
	if len(gradeData) == 0 {
		return fallbackPercentile(scaled, level)
	}
	for _, bp := range gradeData {
		if len(bp) != 2 {
			return fallbackPercentile(scaled, level)
		}
	}

	first, last := gradeData[0], gradeData[len(gradeData)-1]
	if scaled <= first[0] {
		return first[1]
	}
	if scaled >= last[0] {
		return last[1]
	}

	for i := 0; i < len(gradeData)-1; i++ {
		s1, p1 := gradeData[i][0], gradeData[i][1]
		s2, p2 := gradeData[i+1][0], gradeData[i+1][1]
		if s1 <= scaled && scaled <= s2 {
			if s2 == s1 {
				return p1
			}
			fraction := float64(scaled-s1) / float64(s2-s1)
			return int(math.Round(float64(p1) + fraction*float64(p2-p1)))
		}
	}
	return last[1]
}

// fallbackPercentile is the table-free estimate, a linear map of the
// scaled score onto 1..99.
func fallbackPercentile(scaled int, level exam.Level) int {
	cfg, ok := exam.ConfigForLevel(level)
	if !ok || cfg.ScoreMax == cfg.ScoreMin {
		return 50
	}
	fraction := float64(scaled-cfg.ScoreMin) / float64(cfg.ScoreMax-cfg.ScoreMin)
	p := int(math.Round(fraction*98 + 1))
	if p < 1 {
		p = 1
	}
	if p > 99 {
		p = 99
	}
	return p
}
