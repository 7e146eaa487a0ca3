// Package leveling adjusts per-topic difficulty from answer history and
// decides level promotion and demotion.
package leveling

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

// Engine tracks mastery and moves students between grades and levels.
type Engine struct {
	mastery  store.MasteryRepo
	answers  store.AnswerRepo
	sessions store.SessionRepo
	students store.StudentRepo
	settings exam.Settings
}

func New(mastery store.MasteryRepo, answers store.AnswerRepo, sessions store.SessionRepo, students store.StudentRepo, settings exam.Settings) *Engine {
	return &Engine{
		mastery:  mastery,
		answers:  answers,
		sessions: sessions,
		students: students,
		settings: settings,
	}
}

// DifficultyForTopic returns the current integer difficulty (1-5) for a
// topic, defaulting when the student has no mastery record yet.
func (e *Engine) DifficultyForTopic(ctx context.Context, studentID int, topic exam.QuestionType) (int, error) {
	m, err := e.mastery.ForTopic(ctx, studentID, topic)
	if err != nil {
		return 0, fmt.Errorf("topic mastery: %w", err)
	}
	if m == nil {
		return int(math.Round(e.settings.DifficultyDefault)), nil
	}
	d := int(math.Round(m.DifficultyLevel))
	if d < int(e.settings.DifficultyMin) {
		d = int(e.settings.DifficultyMin)
	}
	if d > int(e.settings.DifficultyMax) {
		d = int(e.settings.DifficultyMax)
	}
	return d, nil
}

// DifficultyMap returns the difficulty for every topic relevant to the
// student's level.
func (e *Engine) DifficultyMap(ctx context.Context, student *store.Student) (map[exam.QuestionType]int, error) {
	result := make(map[exam.QuestionType]int)
	for _, qtype := range exam.TypesForLevel(student.Level) {
		d, err := e.DifficultyForTopic(ctx, student.ID, qtype)
		if err != nil {
			return nil, err
		}
		result[qtype] = d
	}
	return result, nil
}

// UpdateAfterAnswers folds a session's results into the mastery records
// and runs the level mastery check. Returns user-facing event messages
// for any difficulty or level changes.
func (e *Engine) UpdateAfterAnswers(ctx context.Context, student *store.Student, answers []*store.Answer, questions []*store.Question) ([]string, error) {
	qMap := make(map[int]*store.Question, len(questions))
	for _, q := range questions {
		qMap[q.ID] = q
	}

	// Group answers by topic, preserving first-seen topic order so
	// event messages come out in presentation order.
	byTopic := make(map[exam.QuestionType][]*store.Answer)
	var topicOrder []exam.QuestionType
	for _, a := range answers {
		q, ok := qMap[a.QuestionID]
		if !ok {
			continue
		}
		topic := q.QuestionType
		if _, seen := byTopic[topic]; !seen {
			topicOrder = append(topicOrder, topic)
		}
		byTopic[topic] = append(byTopic[topic], a)
	}

	var events []string
	for _, topic := range topicOrder {
		event, err := e.updateTopic(ctx, student.ID, topic, byTopic[topic])
		if err != nil {
			return events, err
		}
		if event != "" {
			events = append(events, event)
		}
	}

	masteryEvent, err := e.checkLevelMastery(ctx, student)
	if err != nil {
		return events, err
	}
	if masteryEvent != "" {
		events = append(events, masteryEvent)
	}
	return events, nil
}

// updateTopic reworks one topic's mastery record from a batch of
// answers and steps difficulty when both the batch and the running
// accuracy cross their thresholds.
func (e *Engine) updateTopic(ctx context.Context, studentID int, topic exam.QuestionType, batch []*store.Answer) (string, error) {
	if len(batch) == 0 {
		return "", nil
	}

	m, err := e.mastery.ForTopic(ctx, studentID, topic)
	if err != nil {
		return "", fmt.Errorf("topic mastery: %w", err)
	}
	if m == nil {
		m = &store.TopicMastery{
			StudentID:       studentID,
			TopicTag:        topic,
			DifficultyLevel: e.settings.DifficultyDefault,
		}
	}

	batchCorrect := 0
	for _, a := range batch {
		if a.IsCorrect {
			batchCorrect++
		}
	}
	batchAccuracy := float64(batchCorrect) / float64(len(batch))

	m.TotalAttempted += len(batch)
	m.TotalCorrect += batchCorrect

	recent, err := e.answers.ForStudentTopic(ctx, studentID, topic, 50)
	if err != nil {
		return "", fmt.Errorf("recent answers: %w", err)
	}
	m.Last50Attempted = len(recent)
	m.Last50Correct = 0
	for _, a := range recent {
		if a.IsCorrect {
			m.Last50Correct++
		}
	}

	overall := m.OverallAccuracy()
	old := m.DifficultyLevel
	var event string

	if m.TotalAttempted >= e.settings.MinQuestionsForAdjust {
		switch {
		case batchAccuracy >= e.settings.UpThreshold && overall >= 0.80:
			next := math.Min(e.settings.DifficultyMax, m.DifficultyLevel+e.settings.DifficultyStep)
			if next != m.DifficultyLevel {
				m.DifficultyLevel = next
				event = fmt.Sprintf("Difficulty up! %s: %.1f -> %.1f", exam.DisplayName(topic), old, next)
			}
		case batchAccuracy < e.settings.DownThreshold && overall < 0.60:
			next := math.Max(e.settings.DifficultyMin, m.DifficultyLevel-e.settings.DifficultyStep)
			if next != m.DifficultyLevel {
				m.DifficultyLevel = next
				event = fmt.Sprintf("Difficulty adjusted: %s: %.1f -> %.1f", exam.DisplayName(topic), old, next)
			}
		}
	}

	m.UpdatedAt = time.Now()
	if err := e.mastery.Upsert(ctx, m); err != nil {
		return "", fmt.Errorf("upsert mastery: %w", err)
	}
	return event, nil
}

// checkLevelMastery promotes the student when their recent full tests
// all score high percentiles and every well-sampled topic is accurate.
func (e *Engine) checkLevelMastery(ctx context.Context, student *store.Student) (string, error) {
	sessions, err := e.sessions.ForStudentByMode(ctx, student.ID, exam.ModeFullTest, e.settings.MasteryTestCount)
	if err != nil {
		return "", fmt.Errorf("recent full tests: %w", err)
	}
	if len(sessions) < e.settings.MasteryTestCount {
		return "", nil
	}

	for _, s := range sessions {
		for _, pct := range []*int{s.VerbalPercentile, s.QuantitativePercentile, s.ReadingPercentile} {
			if pct == nil || *pct < e.settings.MasteryPercentile {
				return "", nil
			}
		}
	}

	records, err := e.mastery.All(ctx, student.ID)
	if err != nil {
		return "", fmt.Errorf("mastery records: %w", err)
	}
	for _, m := range records {
		if m.TotalAttempted < e.settings.MasteryMinQuestions {
			continue
		}
		if m.OverallAccuracy() < e.settings.MasteryAccuracy {
			return "", nil
		}
	}

	return e.levelUp(ctx, student)
}

// levelUp advances grade within a level, crosses elementary into
// middle, and congratulates at the ceiling.
func (e *Engine) levelUp(ctx context.Context, student *store.Student) (string, error) {
	switch student.Level {
	case exam.LevelElementary:
		if student.Grade < 4 {
			student.Grade++
			if err := e.students.Update(ctx, student); err != nil {
				return "", fmt.Errorf("update student: %w", err)
			}
			return fmt.Sprintf("Level Up! %s is now practicing at Grade %d Elementary Level!", student.Name, student.Grade), nil
		}
		student.Level = exam.LevelMiddle
		student.Grade = 5
		if err := e.students.Update(ctx, student); err != nil {
			return "", fmt.Errorf("update student: %w", err)
		}
		return fmt.Sprintf("Level Up! %s has moved to Middle Level SSAT! Questions will be more challenging.", student.Name), nil

	case exam.LevelMiddle:
		if student.Grade < 7 {
			student.Grade++
			if err := e.students.Update(ctx, student); err != nil {
				return "", fmt.Errorf("update student: %w", err)
			}
			return fmt.Sprintf("Level Up! %s is now practicing at Grade %d Middle Level!", student.Name, student.Grade), nil
		}
		return fmt.Sprintf("%s has mastered the Middle Level SSAT! Amazing work! Continue practicing to stay sharp.", student.Name), nil
	}
	return "", nil
}

// CheckLevelDown returns an advisory message when the student's recent
// full tests all came in below the struggle threshold. It never changes
// the student; demotion is a separate explicit step.
func (e *Engine) CheckLevelDown(ctx context.Context, student *store.Student) (string, error) {
	sessions, err := e.sessions.ForStudentByMode(ctx, student.ID, exam.ModeFullTest, e.settings.LevelDownTestCount)
	if err != nil {
		return "", fmt.Errorf("recent full tests: %w", err)
	}
	if len(sessions) < e.settings.LevelDownTestCount {
		return "", nil
	}

	for _, s := range sessions {
		for _, pct := range []*int{s.VerbalPercentile, s.QuantitativePercentile, s.ReadingPercentile} {
			if pct != nil && *pct >= e.settings.LevelDownPercentile {
				return "", nil
			}
		}
	}
	return "It looks like the current level might be a stretch. Consider going back for more practice.", nil
}

// LevelDown moves the student back one step: grade down within a
// level, middle grade 5 back to elementary grade 4, floor at
// elementary grade 3.
func (e *Engine) LevelDown(ctx context.Context, student *store.Student) (string, error) {
	switch student.Level {
	case exam.LevelMiddle:
		if student.Grade > 5 {
			student.Grade--
		} else {
			student.Level = exam.LevelElementary
			student.Grade = 4
		}
	case exam.LevelElementary:
		if student.Grade > 3 {
			student.Grade--
		}
	}

	if err := e.students.Update(ctx, student); err != nil {
		return "", fmt.Errorf("update student: %w", err)
	}
	return fmt.Sprintf("Moved back to Grade %d %s Level.", student.Grade, levelTitle(student.Level)), nil
}

func levelTitle(level exam.Level) string {
	switch level {
	case exam.LevelElementary:
		return "Elementary"
	case exam.LevelMiddle:
		return "Middle"
	}
	return string(level)
}
