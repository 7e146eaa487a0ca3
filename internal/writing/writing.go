// Package writing runs writing practice: prompt selection, timed
// composition, tutor feedback, and sample history.
package writing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
	"github.com/shailiguru/ssat-practice/internal/timer"
)

// Kind classifies a writing prompt.
type Kind string

const (
	KindPicture  Kind = "picture"
	KindCreative Kind = "creative"
	KindPersonal Kind = "personal"
)

// Prompt is one writing assignment.
type Prompt struct {
	Kind Kind
	Text string
}

// FeedbackProvider produces tutor feedback for a writing sample.
// Implemented by qgen.Generator; degraded output is the provider's
// concern, so this never returns an error.
type FeedbackProvider interface {
	WritingFeedback(ctx context.Context, promptText, response string, level exam.Level, grade int) string
}

// UI is the console surface the writing flow drives.
type UI interface {
	Info(msg string)
	Warning(msg string)
	Success(msg string)
	Blank()
	Confirm(prompt string) bool
	PressEnter()
	Menu(title string, options []string) int
	PromptInt(prompt string, min, max int) int
	WritingPrompt(text string, timeMinutes int)
	WritingFeedback(text string)
	PastWritingSamples(samples []*store.WritingSample)
	WritingSampleDetail(s *store.WritingSample)

	// ReadLine reads one input line; an error ends collection.
	ReadLine(prompt string) (string, error)
}

// Countdown is the slice of the section timer the writing flow needs.
type Countdown interface {
	TimeUp() bool
	FormatRemaining() string
	Stop()
}

// Practice orchestrates writing sessions against the sample store.
type Practice struct {
	samples  store.WritingRepo
	feedback FeedbackProvider
	settings exam.Settings
	ui       UI

	// newTimer is swapped out in tests.
	newTimer func(seconds int) Countdown
	pick     func(n int) int
}

func New(samples store.WritingRepo, feedback FeedbackProvider, settings exam.Settings, ui UI) *Practice {
	return &Practice{
		samples:  samples,
		feedback: feedback,
		settings: settings,
		ui:       ui,
		newTimer: func(seconds int) Countdown {
			t := timer.New(seconds)
			t.Start()
			return t
		},
		pick: rand.IntN,
	}
}

// Run is the standalone writing practice menu loop.
func (p *Practice) Run(ctx context.Context, student *store.Student) error {
	for {
		choice := p.ui.Menu("Writing Practice", []string{
			"New writing prompt",
			"Choose prompt type",
			"View past submissions",
			"Back to main menu",
		})
		switch choice {
		case 1:
			if err := p.writeNew(ctx, student, "", true); err != nil {
				return err
			}
		case 2:
			if err := p.chooseAndWrite(ctx, student); err != nil {
				return err
			}
		case 3:
			if err := p.viewPast(ctx, student); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// RunTimed runs the writing section of a full test: the timer always
// starts and the sample is linked to the test session.
func (p *Practice) RunTimed(ctx context.Context, student *store.Student, sessionID int) error {
	minutes := p.writingMinutes(student.Level)
	prompt := p.randomPrompt(student.Level)

	p.ui.WritingPrompt(prompt.Text, minutes)

	var countdown Countdown
	if p.settings.TimerEnabled {
		countdown = p.newTimer(minutes * 60)
	}
	response := p.collectInput(countdown)
	if countdown != nil {
		countdown.Stop()
	}

	if strings.TrimSpace(response) == "" {
		p.ui.Info("No writing submitted.")
		return nil
	}

	p.ui.Info("Getting feedback on your writing...")
	feedback := p.feedback.WritingFeedback(ctx, prompt.Text, response, student.Level, student.Grade)
	p.ui.WritingFeedback(feedback)

	sample := &store.WritingSample{
		StudentID: student.ID,
		SessionID: &sessionID,
		Prompt:    prompt.Text,
		Response:  response,
		Feedback:  &feedback,
	}
	if err := p.samples.Save(ctx, sample); err != nil {
		return fmt.Errorf("save writing sample: %w", err)
	}
	return nil
}

func (p *Practice) writeNew(ctx context.Context, student *store.Student, kind Kind, askTimer bool) error {
	minutes := p.writingMinutes(student.Level)

	var prompt Prompt
	if kind != "" {
		prompt = p.promptByKind(student.Level, kind)
	} else {
		prompt = p.randomPrompt(student.Level)
	}

	p.ui.WritingPrompt(prompt.Text, minutes)

	useTimer := false
	if askTimer && p.settings.TimerEnabled {
		useTimer = p.ui.Confirm("Start timer?")
	}

	var countdown Countdown
	if useTimer {
		countdown = p.newTimer(minutes * 60)
	}
	response := p.collectInput(countdown)
	if countdown != nil {
		countdown.Stop()
	}

	if strings.TrimSpace(response) == "" {
		p.ui.Info("No writing submitted.")
		return nil
	}

	p.ui.Info("Getting feedback on your writing...")
	feedback := p.feedback.WritingFeedback(ctx, prompt.Text, response, student.Level, student.Grade)
	p.ui.WritingFeedback(feedback)

	sample := &store.WritingSample{
		StudentID: student.ID,
		Prompt:    prompt.Text,
		Response:  response,
		Feedback:  &feedback,
	}
	if err := p.samples.Save(ctx, sample); err != nil {
		return fmt.Errorf("save writing sample: %w", err)
	}
	p.ui.Success("Writing sample saved!")
	p.ui.PressEnter()
	return nil
}

func (p *Practice) chooseAndWrite(ctx context.Context, student *store.Student) error {
	if student.Level == exam.LevelElementary {
		// Every elementary prompt is picture-based.
		return p.writeNew(ctx, student, KindPicture, true)
	}
	choice := p.ui.Menu("Prompt Type", []string{"Creative prompt", "Personal essay prompt"})
	kind := KindCreative
	if choice == 2 {
		kind = KindPersonal
	}
	return p.writeNew(ctx, student, kind, true)
}

func (p *Practice) viewPast(ctx context.Context, student *store.Student) error {
	samples, err := p.samples.ForStudent(ctx, student.ID, 10)
	if err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	if len(samples) == 0 {
		p.ui.Info("No writing samples yet.")
		p.ui.PressEnter()
		return nil
	}

	p.ui.PastWritingSamples(samples)
	idx := p.ui.PromptInt("View which sample? (0 to go back)", 0, len(samples))
	if idx == 0 {
		return nil
	}
	p.ui.WritingSampleDetail(samples[idx-1])
	p.ui.PressEnter()
	return nil
}

func (p *Practice) writingMinutes(level exam.Level) int {
	if cfg, ok := exam.ConfigForLevel(level); ok {
		return cfg.WritingTimeMinutes
	}
	return 15
}

func (p *Practice) randomPrompt(level exam.Level) Prompt {
	pool := promptsForLevel(level)
	return pool[p.pick(len(pool))]
}

func (p *Practice) promptByKind(level exam.Level, kind Kind) Prompt {
	pool := promptsForLevel(level)
	if level != exam.LevelElementary {
		var filtered []Prompt
		for _, pr := range pool {
			if pr.Kind == kind {
				filtered = append(filtered, pr)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}
	return pool[p.pick(len(pool))]
}

func promptsForLevel(level exam.Level) []Prompt {
	if level == exam.LevelElementary {
		return elementaryPrompts
	}
	return middlePrompts
}

// collectInput reads lines until a double blank line, input error, or
// timer expiry. The remaining time is shown in the line prompt while a
// countdown is running.
func (p *Practice) collectInput(countdown Countdown) string {
	var lines []string
	blanks := 0

	for {
		if countdown != nil && countdown.TimeUp() {
			p.ui.Warning("Time's up!")
			break
		}

		prompt := "  "
		if countdown != nil {
			prompt = fmt.Sprintf("  [%s] ", countdown.FormatRemaining())
		}
		line, err := p.ui.ReadLine(prompt)
		if err != nil {
			break
		}

		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
			lines = append(lines, "")
		} else {
			blanks = 0
			lines = append(lines, line)
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
