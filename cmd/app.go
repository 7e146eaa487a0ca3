package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shailiguru/ssat-practice/internal/display"
	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/leveling"
	"github.com/shailiguru/ssat-practice/internal/llm"
	"github.com/shailiguru/ssat-practice/internal/pool"
	"github.com/shailiguru/ssat-practice/internal/qgen"
	"github.com/shailiguru/ssat-practice/internal/review"
	"github.com/shailiguru/ssat-practice/internal/runner"
	"github.com/shailiguru/ssat-practice/internal/scoring"
	"github.com/shailiguru/ssat-practice/internal/store"
	"github.com/shailiguru/ssat-practice/internal/writing"
)

// app bundles the long-lived pieces of the interactive session. The
// per-mode components (cache, runner, review) are rebuilt on each menu
// action so settings changes take effect immediately.
type app struct {
	st       *store.Store
	ui       *display.Console
	settings exam.Settings
	tables   scoring.Tables
	gen      *qgen.Generator // nil when no LLM provider is configured
}

// buildApp opens the store and assembles the shared dependencies. The
// returned cleanup closes the store.
func buildApp(cmd *cobra.Command) (*app, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	settings := exam.SettingsFromEnv()
	a := &app{
		st:       st,
		ui:       display.New(),
		settings: settings,
		tables:   scoring.LoadTables(settings.PercentileTablesPath),
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation and writing feedback will be unavailable; cached questions still work.")
	} else {
		a.gen = qgen.New(provider, settings)
	}

	return a, func() { st.Close() }, nil
}

// runApp starts the interactive menu loop.
func runApp(cmd *cobra.Command) error {
	a, cleanup, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	student, err := a.selectOrCreateProfile(ctx)
	if err != nil {
		return err
	}
	if student == nil {
		return fmt.Errorf("no profile selected")
	}

	return a.mainLoop(ctx, student)
}

// status adapts pool progress callbacks onto the console.
func (a *app) status(msg, level string) {
	switch level {
	case "success":
		a.ui.Success(msg)
	case "warning":
		a.ui.Warning(msg)
	case "error":
		a.ui.Error(msg)
	default:
		a.ui.Info(msg)
	}
}

func (a *app) newCache() *pool.Cache {
	var gen pool.Generator
	if a.gen != nil {
		gen = a.gen
	} else {
		gen = unavailableGenerator{}
	}
	return pool.New(a.st.Questions(), gen, a.settings, a.status)
}

func (a *app) newWriting() *writing.Practice {
	var feedback writing.FeedbackProvider
	if a.gen != nil {
		feedback = a.gen
	} else {
		feedback = unavailableGenerator{}
	}
	return writing.New(a.st.Writing(), feedback, a.settings, a.ui)
}

func (a *app) newRunner() *runner.Runner {
	lev := leveling.New(a.st.Mastery(), a.st.Answers(), a.st.Sessions(), a.st.Students(), a.settings)
	return runner.New(a.st.Sessions(), a.st.Answers(), a.newCache(), lev, a.newWriting(), a.tables, a.settings, a.ui)
}

func (a *app) mainLoop(ctx context.Context, student *store.Student) error {
	for {
		a.ui.ClearScreen()
		a.ui.Info("SSAT Practice")
		a.ui.Info(fmt.Sprintf("Student: %s | Grade %d | %s", student.Name, student.Grade, levelTitle(student.Level)))

		choice := a.ui.Menu("Main Menu", []string{
			"Start Practice Test (Full)",
			"Section Practice",
			"Quick Drill (10-20 questions)",
			"Review Missed Questions",
			"Writing Practice",
			"View Progress & Scores",
			"Switch Profile",
			"Settings",
			"Exit",
		})

		var err error
		switch choice {
		case 1:
			err = a.newRunner().RunFullTest(ctx, student)
		case 2:
			err = a.newRunner().RunSectionPractice(ctx, student)
		case 3:
			err = a.newRunner().RunQuickDrill(ctx, student)
		case 4:
			err = review.New(a.st.Sessions(), a.st.Answers(), a.st.Questions(), a.ui).Run(ctx, student)
		case 5:
			err = a.newWriting().Run(ctx, student)
		case 6:
			a.showProgress(ctx, student)
			a.ui.PressEnter()
		case 7:
			var next *store.Student
			next, err = a.selectOrCreateProfile(ctx)
			if next != nil {
				student = next
			}
		case 8:
			err = a.settingsMenu(ctx, student)
		case 9:
			a.ui.Info("Goodbye! Keep up the great work!")
			return nil
		}
		if err != nil {
			a.ui.Error(fmt.Sprintf("An error occurred: %v", err))
			a.ui.PressEnter()
		}
	}
}

func (a *app) selectOrCreateProfile(ctx context.Context) (*store.Student, error) {
	students, err := a.st.Students().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	if len(students) == 0 {
		a.ui.Info("No profiles found. Let's create one!")
		return a.createProfile(ctx)
	}

	options := make([]string, 0, len(students)+1)
	for _, s := range students {
		options = append(options, fmt.Sprintf("%s (Grade %d, %s)", s.Name, s.Grade, levelTitle(s.Level)))
	}
	options = append(options, "Create new profile")

	choice := a.ui.Menu("Select Profile", options)
	if choice == len(options) {
		return a.createProfile(ctx)
	}
	return students[choice-1], nil
}

func (a *app) createProfile(ctx context.Context) (*store.Student, error) {
	var name string
	for name == "" {
		line, err := a.ui.ReadLine("Student's name: ")
		if err != nil {
			return nil, fmt.Errorf("read name: %w", err)
		}
		name = strings.TrimSpace(line)
		if name == "" {
			a.ui.Error("Name cannot be empty.")
		}
	}

	grade := a.ui.PromptInt("Current grade", 3, 8)
	level := exam.LevelForGrade(grade)
	switch {
	case level == exam.LevelElementary:
		a.ui.Info(fmt.Sprintf("Grade %d -> Elementary Level SSAT", grade))
	case grade <= 7:
		a.ui.Info(fmt.Sprintf("Grade %d -> Middle Level SSAT", grade))
	default:
		a.ui.Info(fmt.Sprintf("Grade %d -> Upper Level SSAT (using Middle Level format)", grade))
	}

	student, err := a.st.Students().Create(ctx, name, grade, level)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	a.ui.Success(fmt.Sprintf("Profile created for %s!", name))
	return student, nil
}

func (a *app) settingsMenu(ctx context.Context, student *store.Student) error {
	for {
		timerState := "OFF"
		if a.settings.TimerEnabled {
			timerState = "ON"
		}
		choice := a.ui.Menu("Settings", []string{
			fmt.Sprintf("Timer: %s", timerState),
			fmt.Sprintf("Adjust grade level (currently %d)", student.Grade),
			fmt.Sprintf("Adjust test level (currently %s)", levelTitle(student.Level)),
			"Pre-generate question pool",
			"View question pool stats",
			"Reset progress (caution!)",
			"Back to main menu",
		})

		switch choice {
		case 1:
			a.settings.TimerEnabled = !a.settings.TimerEnabled
			state := "OFF"
			if a.settings.TimerEnabled {
				state = "ON"
			}
			a.ui.Success(fmt.Sprintf("Timer is now %s", state))

		case 2:
			grade := a.ui.PromptInt("New grade level", 3, 8)
			student.Grade = grade
			student.Level = exam.LevelForGrade(grade)
			if err := a.st.Students().Update(ctx, student); err != nil {
				return fmt.Errorf("update student: %w", err)
			}
			a.ui.Success(fmt.Sprintf("Grade updated to %d (%s)", grade, levelTitle(student.Level)))

		case 3:
			lc := a.ui.Menu("Select Level", []string{
				"Elementary Level (Grades 3-4)",
				"Middle Level (Grades 5-7)",
			})
			student.Level = exam.LevelElementary
			if lc == 2 {
				student.Level = exam.LevelMiddle
			}
			if err := a.st.Students().Update(ctx, student); err != nil {
				return fmt.Errorf("update student: %w", err)
			}
			a.ui.Success(fmt.Sprintf("Level updated to %s", levelTitle(student.Level)))

		case 4:
			if a.gen == nil {
				a.ui.Error("No LLM provider configured; cannot generate questions.")
				break
			}
			counts := a.newCache().GenerateBatch(ctx, student.Level, student.Grade)
			total := 0
			for _, n := range counts {
				total += n
			}
			a.ui.Success(fmt.Sprintf("Generated %d questions.", total))

		case 5:
			a.showPoolStats(ctx, student)
			a.ui.PressEnter()

		case 6:
			if a.ui.Confirm("This will delete ALL progress for this student. Are you sure?") &&
				a.ui.Confirm("This CANNOT be undone. Really delete?") {
				if err := a.resetProgress(ctx, student.ID); err != nil {
					return fmt.Errorf("reset progress: %w", err)
				}
				a.ui.Success("Progress has been reset.")
			}

		case 7:
			return nil
		}
	}
}

// resetProgress removes all answers, sessions, mastery records, and
// writing samples for one student. The profile itself stays.
func (a *app) resetProgress(ctx context.Context, studentID int) error {
	for _, table := range []string{"answers", "test_sessions", "topic_masteries", "writing_samples"} {
		q := fmt.Sprintf("DELETE FROM %s WHERE student_id = ?", table)
		if _, err := a.st.DB().ExecContext(ctx, q, studentID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func (a *app) showPoolStats(ctx context.Context, student *store.Student) {
	stats, err := a.newCache().PoolStats(ctx, student.ID, student.Level)
	if err != nil {
		a.ui.Error(fmt.Sprintf("Failed to get pool stats: %v", err))
		return
	}
	a.ui.Blank()
	a.ui.Info("Unseen questions by topic:")
	for _, t := range exam.TypesForLevel(student.Level) {
		a.ui.Info(fmt.Sprintf("  %-24s %d", exam.DisplayName(t), stats[t]))
	}
}

func (a *app) showProgress(ctx context.Context, student *store.Student) {
	a.ui.ClearScreen()
	a.ui.Info(fmt.Sprintf("Progress for %s (Grade %d, %s)", student.Name, student.Grade, levelTitle(student.Level)))
	a.ui.Blank()

	mastery, err := a.st.Mastery().All(ctx, student.ID)
	if err != nil {
		a.ui.Error(fmt.Sprintf("Failed to load mastery: %v", err))
		return
	}
	if len(mastery) == 0 {
		a.ui.Info("No practice recorded yet. Try a quick drill!")
	} else {
		sort.Slice(mastery, func(i, j int) bool { return mastery[i].TopicTag < mastery[j].TopicTag })
		a.ui.Info(fmt.Sprintf("  %-24s %-10s %-10s %s", "Topic", "Difficulty", "Accuracy", "Attempted"))
		for _, m := range mastery {
			a.ui.Info(fmt.Sprintf("  %-24s %-10.1f %-10s %d",
				exam.DisplayName(m.TopicTag), m.DifficultyLevel,
				fmt.Sprintf("%.0f%%", m.OverallAccuracy()*100), m.TotalAttempted))
		}
	}

	sessions, err := a.st.Sessions().ForStudentByMode(ctx, student.ID, exam.ModeFullTest, 5)
	if err != nil || len(sessions) == 0 {
		return
	}
	a.ui.Blank()
	a.ui.Info("Recent full tests:")
	for _, s := range sessions {
		total := "incomplete"
		if s.TotalScaled != nil {
			total = fmt.Sprintf("%d", *s.TotalScaled)
		}
		a.ui.Info(fmt.Sprintf("  %s  total %s", s.StartedAt.Format("2006-01-02"), total))
	}
}

func levelTitle(level exam.Level) string {
	if level == exam.LevelElementary {
		return "Elementary Level"
	}
	return "Middle Level"
}

// unavailableGenerator stands in when no LLM provider is configured:
// pool shortfalls fail with a clear message and writing feedback
// degrades gracefully.
type unavailableGenerator struct{}

var errNoProvider = fmt.Errorf("no LLM provider configured")

func (unavailableGenerator) GenerateQuestions(context.Context, exam.QuestionType, exam.Level, int, int, int) ([]*store.Question, error) {
	return nil, errNoProvider
}

func (unavailableGenerator) GenerateReadingComprehension(context.Context, exam.Level, int, int, int, int) ([]*store.Question, error) {
	return nil, errNoProvider
}

func (unavailableGenerator) WritingFeedback(context.Context, string, string, exam.Level, int) string {
	return "Great effort! Your writing has been saved. Feedback is unavailable without an AI provider configured."
}
