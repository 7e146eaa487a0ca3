package writing

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

type fakeWritingRepo struct {
	saved []*store.WritingSample
}

func (r *fakeWritingRepo) Save(_ context.Context, w *store.WritingSample) error {
	r.saved = append(r.saved, w)
	return nil
}

func (r *fakeWritingRepo) ForStudent(context.Context, int, int) ([]*store.WritingSample, error) {
	return nil, nil
}

type fakeFeedback struct {
	text string
}

func (f *fakeFeedback) WritingFeedback(context.Context, string, string, exam.Level, int) string {
	return f.text
}

// scriptedUI feeds canned lines to ReadLine and records output calls.
type scriptedUI struct {
	lines    []string
	infos    []string
	warnings []string
	feedback string
}

func (u *scriptedUI) Info(msg string)    { u.infos = append(u.infos, msg) }
func (u *scriptedUI) Warning(msg string) { u.warnings = append(u.warnings, msg) }
func (u *scriptedUI) Success(string)     {}
func (u *scriptedUI) Blank()             {}
func (u *scriptedUI) Confirm(string) bool {
	return false
}
func (u *scriptedUI) PressEnter()                               {}
func (u *scriptedUI) Menu(string, []string) int                 { return 0 }
func (u *scriptedUI) PromptInt(string, int, int) int            { return 0 }
func (u *scriptedUI) WritingPrompt(string, int)                 {}
func (u *scriptedUI) WritingFeedback(text string)               { u.feedback = text }
func (u *scriptedUI) PastWritingSamples([]*store.WritingSample) {}
func (u *scriptedUI) WritingSampleDetail(*store.WritingSample)  {}

func (u *scriptedUI) ReadLine(string) (string, error) {
	if len(u.lines) == 0 {
		return "", io.EOF
	}
	line := u.lines[0]
	u.lines = u.lines[1:]
	return line, nil
}

type expiringCountdown struct {
	readsLeft int
}

func (c *expiringCountdown) TimeUp() bool {
	c.readsLeft--
	return c.readsLeft < 0
}
func (c *expiringCountdown) FormatRemaining() string { return "00:30" }
func (c *expiringCountdown) Stop()                   {}

func testPractice(repo *fakeWritingRepo, ui *scriptedUI) *Practice {
	settings := exam.DefaultSettings()
	settings.TimerEnabled = false
	p := New(repo, &fakeFeedback{text: "Nice imagery."}, settings, ui)
	p.pick = func(int) int { return 0 }
	return p
}

func middleStudent() *store.Student {
	return &store.Student{ID: 1, Name: "Maya", Grade: 6, Level: exam.LevelMiddle}
}

func TestRunTimedSavesLinkedSample(t *testing.T) {
	repo := &fakeWritingRepo{}
	ui := &scriptedUI{lines: []string{"Once upon a time.", "The end.", "", ""}}
	p := testPractice(repo, ui)

	if err := p.RunTimed(context.Background(), middleStudent(), 42); err != nil {
		t.Fatal(err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d samples, want 1", len(repo.saved))
	}
	sample := repo.saved[0]
	if sample.SessionID == nil || *sample.SessionID != 42 {
		t.Error("sample not linked to session")
	}
	if sample.Response != "Once upon a time.\nThe end." {
		t.Errorf("response = %q", sample.Response)
	}
	if sample.Feedback == nil || *sample.Feedback != "Nice imagery." {
		t.Error("feedback not attached")
	}
	if ui.feedback != "Nice imagery." {
		t.Error("feedback not shown")
	}
}

func TestRunTimedEmptySubmissionNotSaved(t *testing.T) {
	repo := &fakeWritingRepo{}
	ui := &scriptedUI{lines: []string{"", ""}}
	p := testPractice(repo, ui)

	if err := p.RunTimed(context.Background(), middleStudent(), 42); err != nil {
		t.Fatal(err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("saved %d samples, want 0", len(repo.saved))
	}
	found := false
	for _, msg := range ui.infos {
		if strings.Contains(msg, "No writing submitted") {
			found = true
		}
	}
	if !found {
		t.Error("missing no-submission notice")
	}
}

func TestCollectInputStopsAtTimerExpiry(t *testing.T) {
	ui := &scriptedUI{lines: []string{"line one", "line two", "line three", "line four"}}
	p := testPractice(&fakeWritingRepo{}, ui)

	got := p.collectInput(&expiringCountdown{readsLeft: 2})
	if got != "line one\nline two" {
		t.Errorf("collected %q", got)
	}
	if len(ui.warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(ui.warnings))
	}
}

func TestCollectInputKeepsSingleBlankLines(t *testing.T) {
	ui := &scriptedUI{lines: []string{"para one", "", "para two", "", ""}}
	p := testPractice(&fakeWritingRepo{}, ui)

	got := p.collectInput(nil)
	if got != "para one\n\npara two" {
		t.Errorf("collected %q", got)
	}
}

func TestPromptByKindFiltersMiddle(t *testing.T) {
	p := testPractice(&fakeWritingRepo{}, &scriptedUI{})
	for i := 0; i < len(middlePrompts); i++ {
		idx := i
		p.pick = func(n int) int { return idx % n }
		prompt := p.promptByKind(exam.LevelMiddle, KindPersonal)
		if prompt.Kind != KindPersonal {
			t.Fatalf("got %s prompt, want personal", prompt.Kind)
		}
	}
}

func TestElementaryPromptsAllPicture(t *testing.T) {
	for _, pr := range elementaryPrompts {
		if pr.Kind != KindPicture {
			t.Errorf("elementary prompt has kind %s", pr.Kind)
		}
	}
}

func TestWritingMinutesByLevel(t *testing.T) {
	p := testPractice(&fakeWritingRepo{}, &scriptedUI{})
	if got := p.writingMinutes(exam.LevelElementary); got != 15 {
		t.Errorf("elementary minutes = %d, want 15", got)
	}
	if got := p.writingMinutes(exam.LevelMiddle); got != 25 {
		t.Errorf("middle minutes = %d, want 25", got)
	}
}
