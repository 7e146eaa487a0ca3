// Package runner orchestrates practice sessions: full tests, section
// practice, and quick drills.
package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/scoring"
	"github.com/shailiguru/ssat-practice/internal/store"
	"github.com/shailiguru/ssat-practice/internal/timer"
)

// QuestionSource supplies questions for a session. Implemented by
// pool.Cache.
type QuestionSource interface {
	GetQuestions(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level, difficulty, count, grade int) ([]*store.Question, error)
	GetMixedQuestions(ctx context.Context, studentID int, section exam.SectionConfig, level exam.Level, difficultyMap map[exam.QuestionType]int, grade int) ([]*store.Question, error)
	CheckAndReplenish(ctx context.Context, studentID int, level exam.Level, grade int) error
}

// Leveler adapts difficulty before and after a session. Implemented by
// leveling.Engine.
type Leveler interface {
	DifficultyMap(ctx context.Context, student *store.Student) (map[exam.QuestionType]int, error)
	UpdateAfterAnswers(ctx context.Context, student *store.Student, answers []*store.Answer, questions []*store.Question) ([]string, error)
	CheckLevelDown(ctx context.Context, student *store.Student) (string, error)
	LevelDown(ctx context.Context, student *store.Student) (string, error)
}

// WritingSection runs the writing block of a full test. Implemented by
// writing.Practice.
type WritingSection interface {
	RunTimed(ctx context.Context, student *store.Student, sessionID int) error
}

// Countdown is the timer surface the question loop polls.
type Countdown interface {
	TimeUp() bool
	Remaining() int
	Stop()
}

// UI is the console surface a session drives. AnswerInput returns the
// selected choice letter, upper case, or nil for a skip.
type UI interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	Blank()
	ClearScreen()
	Confirm(prompt string) bool
	PressEnter()
	Menu(title string, options []string) int
	PromptInt(prompt string, min, max int) int

	SectionIntro(name string, questionCount, timeMinutes int)
	SectionComplete(name string)
	SectionResult(result *scoring.SectionResult, level exam.Level)
	Question(num, total int, q *store.Question, remainingSeconds int)
	AnswerInput() *string
	AnswerFeedback(correct bool, selected *string, correctAnswer, explanation string, choices map[string]string)
	ReviewQuestion(num, total int, q *store.Question, selected *string)
	DrillSummary(correct, total int, topicName string, elapsed time.Duration)
	FullScoreReport(student *store.Student, session *store.TestSession, results []*scoring.SectionResult, breakdown map[exam.QuestionType]scoring.TopicStats)
}

// Runner drives practice sessions end to end.
type Runner struct {
	sessions store.SessionRepo
	answers  store.AnswerRepo
	source   QuestionSource
	leveler  Leveler
	writing  WritingSection // nil disables the writing block
	tables   scoring.Tables
	settings exam.Settings
	ui       UI

	newTimer func(totalSeconds int, warn func(remaining int)) Countdown
	now      func() time.Time
}

func New(sessions store.SessionRepo, answers store.AnswerRepo, source QuestionSource, leveler Leveler, writing WritingSection, tables scoring.Tables, settings exam.Settings, ui UI) *Runner {
	return &Runner{
		sessions: sessions,
		answers:  answers,
		source:   source,
		leveler:  leveler,
		writing:  writing,
		tables:   tables,
		settings: settings,
		ui:       ui,
		newTimer: func(totalSeconds int, warn func(int)) Countdown {
			t := timer.New(totalSeconds, timer.WithWarning(warn))
			t.Start()
			return t
		},
		now: time.Now,
	}
}

// RunFullTest runs a complete practice test section by section, with
// the writing block first for middle level and last for elementary.
func (r *Runner) RunFullTest(ctx context.Context, student *store.Student) error {
	cfg, ok := exam.ConfigForLevel(student.Level)
	if !ok {
		r.ui.Error(fmt.Sprintf("Unknown level: %s", student.Level))
		return nil
	}

	totalMinutes := 0
	for _, s := range cfg.Sections {
		totalMinutes += s.TimeMinutes
	}
	r.ui.Blank()
	r.ui.Info(fmt.Sprintf("Full %s Practice Test", cfg.DisplayName))
	r.ui.Info(fmt.Sprintf("Sections: %d | Total time: %d minutes", len(cfg.Sections), totalMinutes))
	r.ui.Blank()

	if !r.ui.Confirm("Ready to begin?") {
		return nil
	}

	session := &store.TestSession{
		StudentID: student.ID,
		Level:     student.Level,
		Grade:     student.Grade,
		Mode:      exam.ModeFullTest,
		StartedAt: r.now(),
	}
	if err := r.sessions.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	difficultyMap := r.difficultyMap(ctx, student)

	var (
		results      []*scoring.SectionResult
		allAnswers   []*store.Answer
		allQuestions []*store.Question
	)

	if student.Level == exam.LevelMiddle {
		r.runWritingBlock(ctx, student, session)
	}

	for i, section := range cfg.Sections {
		r.ui.ClearScreen()
		r.ui.SectionIntro(section.Name, section.QuestionCount, section.TimeMinutes)
		r.ui.PressEnter()

		questions, err := r.source.GetMixedQuestions(ctx, student.ID, section, student.Level, difficultyMap, student.Grade)
		if err != nil {
			return fmt.Errorf("questions for %s: %w", section.Name, err)
		}
		if len(questions) == 0 {
			r.ui.Warning(fmt.Sprintf("No questions available for %s. Try generating questions first (Settings > Pre-generate).", section.Name))
			continue
		}

		answers, err := r.runSection(ctx, section, questions, session, false, true)
		if err != nil {
			return err
		}
		result := r.scoreSection(section, answers, student)
		results = append(results, result)
		allAnswers = append(allAnswers, answers...)
		allQuestions = append(allQuestions, questions...)

		r.ui.SectionComplete(section.Name)
		r.ui.SectionResult(result, student.Level)

		if i < len(cfg.Sections)-1 {
			if !r.ui.Confirm("Continue to next section?") {
				break
			}
			r.ui.Blank()
		}
	}

	if student.Level == exam.LevelElementary && len(results) > 0 {
		r.runWritingBlock(ctx, student, session)
	}

	if err := r.finalizeFullTest(ctx, session, results, allAnswers, allQuestions, student); err != nil {
		return err
	}

	r.updateMastery(ctx, student, allAnswers, allQuestions)
	r.offerLevelDown(ctx, student)

	if err := r.source.CheckAndReplenish(ctx, student.ID, student.Level, student.Grade); err != nil {
		r.ui.Warning(fmt.Sprintf("Pool replenishment failed: %v", err))
	}

	r.ui.PressEnter()
	return nil
}

// offerLevelDown asks after repeated weak full tests. Declining keeps
// the current level.
func (r *Runner) offerLevelDown(ctx context.Context, student *store.Student) {
	advisory, err := r.leveler.CheckLevelDown(ctx, student)
	if err != nil || advisory == "" {
		return
	}
	r.ui.Blank()
	r.ui.Warning(advisory)
	if !r.ui.Confirm("Move back a level for more practice?") {
		return
	}
	msg, err := r.leveler.LevelDown(ctx, student)
	if err != nil {
		r.ui.Warning(fmt.Sprintf("Level change failed: %v", err))
		return
	}
	r.ui.Info(msg)
}

// RunSectionPractice lets the student pick one section and run it
// standalone.
func (r *Runner) RunSectionPractice(ctx context.Context, student *store.Student) error {
	cfg, ok := exam.ConfigForLevel(student.Level)
	if !ok {
		r.ui.Error(fmt.Sprintf("Unknown level: %s", student.Level))
		return nil
	}

	options := make([]string, 0, len(cfg.Sections)+1)
	for _, s := range cfg.Sections {
		options = append(options, fmt.Sprintf("%s (%d questions, %d min)", s.Name, s.QuestionCount, s.TimeMinutes))
	}
	options = append(options, "Back to main menu")

	choice := r.ui.Menu("Select Section", options)
	if choice < 1 || choice >= len(options) {
		return nil
	}
	section := cfg.Sections[choice-1]

	session := &store.TestSession{
		StudentID: student.ID,
		Level:     student.Level,
		Grade:     student.Grade,
		Mode:      exam.ModeSectionPractice,
		StartedAt: r.now(),
	}
	if err := r.sessions.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	difficultyMap := r.difficultyMap(ctx, student)

	r.ui.SectionIntro(section.Name, section.QuestionCount, section.TimeMinutes)
	r.ui.PressEnter()

	questions, err := r.source.GetMixedQuestions(ctx, student.ID, section, student.Level, difficultyMap, student.Grade)
	if err != nil {
		return fmt.Errorf("questions for %s: %w", section.Name, err)
	}
	if len(questions) == 0 {
		r.ui.Warning("No questions available. Generate questions first.")
		return nil
	}

	answers, err := r.runSection(ctx, section, questions, session, false, true)
	if err != nil {
		return err
	}
	result := r.scoreSection(section, answers, student)

	r.ui.SectionComplete(section.Name)
	r.ui.SectionResult(result, student.Level)

	rawP, scaledP, pctP := session.CategoryScores(exam.CategoryForSection(section.Name))
	raw, scaled, pct := result.RawScore, result.ScaledScore, result.Percentile
	*rawP, *scaledP, *pctP = &raw, &scaled, &pct
	session.TotalScaled = &scaled
	completed := r.now()
	session.CompletedAt = &completed
	if err := r.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	r.updateMastery(ctx, student, answers, questions)

	var wrong []*store.Answer
	for _, a := range answers {
		if a.Selected != nil && !a.IsCorrect {
			wrong = append(wrong, a)
		}
	}
	if len(wrong) > 0 && r.ui.Confirm(fmt.Sprintf("Review %d missed questions?", len(wrong))) {
		r.reviewAnswers(wrong, questions)
	}

	r.ui.PressEnter()
	return nil
}

// RunQuickDrill runs a short targeted drill with instant feedback and
// an optional timer of roughly two minutes per question.
func (r *Runner) RunQuickDrill(ctx context.Context, student *store.Student) error {
	names := make([]string, 0, len(exam.DrillCategories)+1)
	for _, c := range exam.DrillCategories {
		names = append(names, c.Name)
	}
	names = append(names, "Mixed (all types)")
	catChoice := r.ui.Menu("Select Category", names)

	var selected []exam.QuestionType
	if catChoice >= 1 && catChoice <= len(exam.DrillCategories) {
		types := exam.DrillCategories[catChoice-1].Topics
		if len(types) > 1 {
			typeOptions := make([]string, 0, len(types)+1)
			for _, t := range types {
				typeOptions = append(typeOptions, exam.DisplayName(t))
			}
			typeOptions = append(typeOptions, "Mix all")
			typeChoice := r.ui.Menu(fmt.Sprintf("%s Topics", exam.DrillCategories[catChoice-1].Name), typeOptions)
			if typeChoice >= 1 && typeChoice <= len(types) {
				selected = []exam.QuestionType{types[typeChoice-1]}
			} else {
				selected = types
			}
		} else {
			selected = types
		}
	} else {
		selected = exam.TypesForLevel(student.Level)
	}

	count := r.ui.PromptInt("Number of questions", r.settings.DrillMinQuestions, r.settings.DrillMaxQuestions)
	if count < r.settings.DrillMinQuestions {
		count = r.settings.DrillMinQuestions
	}
	if count > r.settings.DrillMaxQuestions {
		count = r.settings.DrillMaxQuestions
	}

	useTimer := r.settings.TimerEnabled && r.ui.Confirm("Use a timer?")

	session := &store.TestSession{
		StudentID: student.ID,
		Level:     student.Level,
		Grade:     student.Grade,
		Mode:      exam.ModeQuickDrill,
		StartedAt: r.now(),
	}
	if err := r.sessions.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	difficultyMap := r.difficultyMap(ctx, student)

	perType := count / len(selected)
	if perType < 1 {
		perType = 1
	}
	remainder := count - perType*len(selected)

	var questions []*store.Question
	for i, qtype := range selected {
		n := perType
		if i < remainder {
			n++
		}
		difficulty, ok := difficultyMap[qtype]
		if !ok {
			difficulty = int(r.settings.DifficultyDefault)
		}
		qs, err := r.source.GetQuestions(ctx, student.ID, qtype, student.Level, difficulty, n, student.Grade)
		if err != nil {
			return fmt.Errorf("questions for %s: %w", qtype, err)
		}
		questions = append(questions, qs...)
	}

	if len(questions) == 0 {
		r.ui.Warning("No questions available. Generate questions first.")
		return nil
	}
	if len(questions) > count {
		questions = questions[:count]
	}

	drillMinutes := 0
	if useTimer {
		drillMinutes = count * 2
	}
	drillSection := exam.SectionConfig{
		Name:          "Quick Drill",
		QuestionCount: len(questions),
		TimeMinutes:   drillMinutes,
		Topics:        selected,
	}

	r.ui.Blank()
	r.ui.Info(fmt.Sprintf("Starting drill: %d questions", len(questions)))
	if useTimer {
		r.ui.Info(fmt.Sprintf("Time limit: %d minutes", drillMinutes))
	}
	r.ui.Blank()

	start := r.now()
	answers, err := r.runSection(ctx, drillSection, questions, session, true, useTimer)
	if err != nil {
		return err
	}
	elapsed := r.now().Sub(start)

	_, correct, _, _ := scoring.RawScore(answers, student.Level)

	completed := r.now()
	session.CompletedAt = &completed
	if err := r.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	topicNames := make([]string, len(selected))
	for i, t := range selected {
		topicNames[i] = exam.DisplayName(t)
	}
	r.ui.DrillSummary(correct, len(questions), strings.Join(topicNames, ", "), elapsed)

	r.updateMastery(ctx, student, answers, questions)

	r.ui.PressEnter()
	return nil
}

// runSection is the question-by-question loop. Each answer is saved
// the moment it is given so an interrupted section loses nothing. When
// the timer expires mid-section, the remaining questions are recorded
// as skips with zero elapsed time.
func (r *Runner) runSection(ctx context.Context, section exam.SectionConfig, questions []*store.Question, session *store.TestSession, instantFeedback, timed bool) ([]*store.Answer, error) {
	var countdown Countdown
	if timed && section.TimeMinutes > 0 && r.settings.TimerEnabled {
		countdown = r.newTimer(section.TimeMinutes*60, func(remaining int) {
			minutes := remaining / 60
			if minutes <= 1 {
				r.ui.Warning("1 minute remaining!")
			} else {
				r.ui.Warning(fmt.Sprintf("%d minutes remaining!", minutes))
			}
		})
		defer countdown.Stop()
	}

	answers := make([]*store.Answer, 0, len(questions))
	for i, question := range questions {
		if countdown != nil && countdown.TimeUp() {
			r.ui.Warning("Time's up! Remaining questions will be skipped.")
			for _, remaining := range questions[i:] {
				skip := &store.Answer{
					SessionID:  session.ID,
					QuestionID: remaining.ID,
					StudentID:  session.StudentID,
					AnsweredAt: r.now(),
				}
				if err := r.answers.Save(ctx, skip); err != nil {
					return answers, fmt.Errorf("save answer: %w", err)
				}
				answers = append(answers, skip)
			}
			break
		}

		remainingSeconds := -1
		if countdown != nil {
			remainingSeconds = countdown.Remaining()
		}
		r.ui.Question(i+1, len(questions), question, remainingSeconds)

		start := r.now()
		selected := r.ui.AnswerInput()
		elapsed := r.now().Sub(start).Seconds()

		isCorrect := selected != nil && strings.EqualFold(*selected, question.CorrectAnswer)

		answer := &store.Answer{
			SessionID:        session.ID,
			QuestionID:       question.ID,
			StudentID:        session.StudentID,
			Selected:         selected,
			IsCorrect:        isCorrect,
			TimeSpentSeconds: elapsed,
			AnsweredAt:       r.now(),
		}
		if err := r.answers.Save(ctx, answer); err != nil {
			return answers, fmt.Errorf("save answer: %w", err)
		}
		answers = append(answers, answer)

		if instantFeedback {
			r.ui.AnswerFeedback(isCorrect, selected, question.CorrectAnswer, question.Explanation, question.Choices)
		}
	}

	return answers, nil
}

// scoreSection scores one section against its nominal question count.
// The answers were already persisted as they were given.
func (r *Runner) scoreSection(section exam.SectionConfig, answers []*store.Answer, student *store.Student) *scoring.SectionResult {
	raw, correct, wrong, skipped := scoring.RawScore(answers, student.Level)
	scaled := scoring.ScaledScore(raw, section.QuestionCount, student.Level)
	percentile := r.tables.Percentile(scaled, student.Level, section.Name, student.Grade)

	totalTime := 0.0
	for _, a := range answers {
		totalTime += a.TimeSpentSeconds
	}

	return &scoring.SectionResult{
		SectionName:     section.Name,
		RawScore:        raw,
		ScaledScore:     scaled,
		Percentile:      percentile,
		TotalQuestions:  section.QuestionCount,
		CorrectCount:    correct,
		WrongCount:      wrong,
		SkippedCount:    skipped,
		TimeUsedSeconds: totalTime,
		Answers:         answers,
	}
}

// finalizeFullTest folds section results into the session's category
// scores. The two middle-level quantitative sections combine: raw
// scores add, scaled and percentile average.
func (r *Runner) finalizeFullTest(ctx context.Context, session *store.TestSession, results []*scoring.SectionResult, allAnswers []*store.Answer, allQuestions []*store.Question, student *store.Student) error {
	for _, result := range results {
		cat := exam.CategoryForSection(result.SectionName)
		rawP, scaledP, pctP := session.CategoryScores(cat)

		if *rawP != nil && cat == exam.CategoryQuantitative {
			**rawP += result.RawScore
			cur := 0
			if *scaledP != nil {
				cur = **scaledP
			}
			avgScaled := (cur + result.ScaledScore) / 2
			*scaledP = &avgScaled
			curPct := 0
			if *pctP != nil {
				curPct = **pctP
			}
			avgPct := (curPct + result.Percentile) / 2
			*pctP = &avgPct
		} else {
			raw, scaled, pct := result.RawScore, result.ScaledScore, result.Percentile
			*rawP, *scaledP, *pctP = &raw, &scaled, &pct
		}
	}

	total := 0
	for _, cat := range []exam.Category{exam.CategoryVerbal, exam.CategoryQuantitative, exam.CategoryReading} {
		_, scaledP, _ := session.CategoryScores(cat)
		if *scaledP != nil && **scaledP != 0 {
			total += **scaledP
		}
	}
	session.TotalScaled = &total
	completed := r.now()
	session.CompletedAt = &completed

	if err := r.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	breakdown := scoring.TopicBreakdown(allAnswers, allQuestions)
	r.ui.FullScoreReport(student, session, results, breakdown)
	return nil
}

func (r *Runner) runWritingBlock(ctx context.Context, student *store.Student, session *store.TestSession) {
	if r.writing == nil {
		return
	}
	if err := r.writing.RunTimed(ctx, student, session.ID); err != nil {
		r.ui.Warning(fmt.Sprintf("Writing section skipped: %v", err))
	}
}

// difficultyMap falls back to defaults when the leveling engine cannot
// be consulted; selection still works at difficulty 3.
func (r *Runner) difficultyMap(ctx context.Context, student *store.Student) map[exam.QuestionType]int {
	m, err := r.leveler.DifficultyMap(ctx, student)
	if err != nil {
		return nil
	}
	return m
}

// updateMastery is non-critical; failures are swallowed so a finished
// session is never lost to a bookkeeping error.
func (r *Runner) updateMastery(ctx context.Context, student *store.Student, answers []*store.Answer, questions []*store.Question) {
	events, err := r.leveler.UpdateAfterAnswers(ctx, student, answers, questions)
	if err != nil {
		return
	}
	for _, event := range events {
		r.ui.Info(event)
	}
}

func (r *Runner) reviewAnswers(wrong []*store.Answer, questions []*store.Question) {
	qMap := make(map[int]*store.Question, len(questions))
	for _, q := range questions {
		qMap[q.ID] = q
	}
	for i, a := range wrong {
		q, ok := qMap[a.QuestionID]
		if !ok {
			continue
		}
		r.ui.ReviewQuestion(i+1, len(wrong), q, a.Selected)
		r.ui.PressEnter()
	}
}
