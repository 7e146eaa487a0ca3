// Package display renders the practice console: questions, score
// reports, menus, and line input.
package display

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/review"
	"github.com/shailiguru/ssat-practice/internal/scoring"
	"github.com/shailiguru/ssat-practice/internal/store"
)

var choiceLetters = []string{"A", "B", "C", "D", "E"}

// Console is a line-oriented terminal frontend. It satisfies the UI
// interfaces of the runner, review, and writing packages.
type Console struct {
	out io.Writer
	in  *bufio.Reader
}

func New() *Console {
	return NewWith(os.Stdout, os.Stdin)
}

// NewWith wires explicit streams, for tests.
func NewWith(out io.Writer, in io.Reader) *Console {
	return &Console{out: out, in: bufio.NewReader(in)}
}

func (c *Console) print(s string) {
	fmt.Fprintln(c.out, s)
}

// ReadLine shows a prompt and returns one raw input line.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Info(msg string)    { c.print(bodyStyle.Render(msg)) }
func (c *Console) Success(msg string) { c.print(successStyle.Render(msg)) }
func (c *Console) Warning(msg string) { c.print(warningStyle.Render(msg)) }
func (c *Console) Error(msg string)   { c.print(errorStyle.Render(msg)) }
func (c *Console) Blank()             { fmt.Fprintln(c.out) }

func (c *Console) ClearScreen() {
	fmt.Fprint(c.out, "\033[2J\033[H")
}

func (c *Console) PressEnter() {
	_, _ = c.ReadLine(hintStyle.Render("Press Enter to continue...") + " ")
}

// Confirm asks a yes/no question; Enter means yes.
func (c *Console) Confirm(prompt string) bool {
	line, err := c.ReadLine(bodyStyle.Render(prompt) + " (Y/n) ")
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "" || answer == "y" || answer == "yes"
}

// Menu renders numbered options and returns the 1-based choice.
func (c *Console) Menu(title string, options []string) int {
	c.Blank()
	c.print(titleStyle.Render(title))
	for i, opt := range options {
		c.print(fmt.Sprintf("  %s %s", dimStyle.Render(fmt.Sprintf("%d.", i+1)), bodyStyle.Render(opt)))
	}
	return c.PromptInt("Choice", 1, len(options))
}

// PromptInt reads an integer in [min, max], re-asking until valid.
// Input errors return min so callers always get a usable value.
func (c *Console) PromptInt(prompt string, min, max int) int {
	for {
		line, err := c.ReadLine(bodyStyle.Render(fmt.Sprintf("%s [%d-%d]: ", prompt, min, max)))
		if err != nil {
			return min
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= min && n <= max {
			return n
		}
		c.print(hintStyle.Render(fmt.Sprintf("Enter a number between %d and %d.", min, max)))
	}
}

func (c *Console) SectionIntro(name string, questionCount, timeMinutes int) {
	c.Blank()
	c.print(cardStyle.Render(fmt.Sprintf("%s\n%s",
		titleStyle.Render(name),
		dimStyle.Render(fmt.Sprintf("%d questions | %d minutes", questionCount, timeMinutes)))))
}

func (c *Console) SectionComplete(name string) {
	c.Blank()
	c.Success(fmt.Sprintf("%s section complete!", name))
}

func (c *Console) SectionResult(result *scoring.SectionResult, level exam.Level) {
	var b strings.Builder
	fmt.Fprintf(&b, "Raw score: %.2f\n", result.RawScore)
	fmt.Fprintf(&b, "Scaled score: %d\n", result.ScaledScore)
	fmt.Fprintf(&b, "Percentile: %d\n", result.Percentile)
	fmt.Fprintf(&b, "Correct %d | Wrong %d | Skipped %d of %d\n",
		result.CorrectCount, result.WrongCount, result.SkippedCount, result.TotalQuestions)
	fmt.Fprintf(&b, "Time used: %s", formatSeconds(int(result.TimeUsedSeconds)))
	c.print(cardStyle.Render(b.String()))
}

// Question renders one question; remainingSeconds < 0 means untimed.
func (c *Console) Question(num, total int, q *store.Question, remainingSeconds int) {
	c.Blank()
	header := fmt.Sprintf("Question %d of %d", num, total)
	if remainingSeconds >= 0 {
		header += dimStyle.Render(fmt.Sprintf("   [%s remaining]", formatSeconds(remainingSeconds)))
	}
	c.print(titleStyle.Render(header))

	if q.Passage != "" {
		c.Blank()
		c.print(passageStyle.Render(q.Passage))
	}
	c.Blank()
	c.print(stemStyle.Render(q.Stem))
	c.Blank()
	for _, letter := range choiceLetters {
		if choice, ok := q.Choices[letter]; ok {
			c.print(fmt.Sprintf("  %s %s", dimStyle.Render(letter+")"), bodyStyle.Render(choice)))
		}
	}
	c.Blank()
}

// AnswerInput reads a choice letter; empty input is a skip.
func (c *Console) AnswerInput() *string {
	for {
		line, err := c.ReadLine(bodyStyle.Render("Your answer (A-E, Enter to skip): "))
		if err != nil {
			return nil
		}
		answer := strings.ToUpper(strings.TrimSpace(line))
		if answer == "" {
			return nil
		}
		for _, letter := range choiceLetters {
			if answer == letter {
				return &answer
			}
		}
		c.print(hintStyle.Render("Please enter a letter A through E, or press Enter to skip."))
	}
}

func (c *Console) AnswerFeedback(correct bool, selected *string, correctAnswer, explanation string, choices map[string]string) {
	c.Blank()
	switch {
	case correct:
		c.Success("Correct!")
	case selected == nil:
		c.Warning(fmt.Sprintf("Skipped. The answer was %s) %s", correctAnswer, choices[correctAnswer]))
	default:
		c.Error(fmt.Sprintf("Not quite. The answer was %s) %s", correctAnswer, choices[correctAnswer]))
	}
	if explanation != "" {
		c.print(dimStyle.Render(explanation))
	}
	c.Blank()
}

func (c *Console) ReviewQuestion(num, total int, q *store.Question, selected *string) {
	c.Blank()
	c.print(titleStyle.Render(fmt.Sprintf("Review %d of %d", num, total)))
	if q.Passage != "" {
		c.Blank()
		c.print(passageStyle.Render(q.Passage))
	}
	c.Blank()
	c.print(stemStyle.Render(q.Stem))
	c.Blank()
	for _, letter := range choiceLetters {
		choice, ok := q.Choices[letter]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %s) %s", letter, choice)
		switch {
		case letter == q.CorrectAnswer:
			c.print(successStyle.Render(line + "  <- correct"))
		case selected != nil && letter == *selected:
			c.print(errorStyle.Render(line + "  <- your answer"))
		default:
			c.print(bodyStyle.Render(line))
		}
	}
	if q.Explanation != "" {
		c.Blank()
		c.print(dimStyle.Render(q.Explanation))
	}
}

func (c *Console) MistakesByTopic(rows []review.TopicErrors) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mistakes by Topic"))
	for i, row := range rows {
		fmt.Fprintf(&b, "\n  %d. %-22s %s", i+1, exam.DisplayName(row.Topic),
			errorStyle.Render(strconv.Itoa(row.Count)))
	}
	c.print(b.String())
}

func (c *Console) DrillSummary(correct, total int, topicName string, elapsed time.Duration) {
	pct := 0
	if total > 0 {
		pct = correct * 100 / total
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render("Drill Complete: "+topicName))
	fmt.Fprintf(&b, "Score: %d/%d (%d%%)\n", correct, total, pct)
	fmt.Fprintf(&b, "Time: %s", formatSeconds(int(elapsed.Seconds())))
	c.print(cardStyle.Render(b.String()))
}

func (c *Console) FullScoreReport(student *store.Student, session *store.TestSession, results []*scoring.SectionResult, breakdown map[exam.QuestionType]scoring.TopicStats) {
	c.Blank()
	c.print(titleStyle.Render(fmt.Sprintf("Score Report: %s (Grade %d, %s)",
		student.Name, student.Grade, levelLabel(student.Level))))
	c.Blank()

	var b strings.Builder
	b.WriteString("Category         Scaled   Percentile\n")
	writeCategoryRow(&b, "Verbal", session.VerbalScaled, session.VerbalPercentile)
	writeCategoryRow(&b, "Quantitative", session.QuantitativeScaled, session.QuantitativePercentile)
	writeCategoryRow(&b, "Reading", session.ReadingScaled, session.ReadingPercentile)
	if session.TotalScaled != nil {
		fmt.Fprintf(&b, "\nTotal scaled score: %d", *session.TotalScaled)
	}
	c.print(cardStyle.Render(b.String()))

	for _, result := range results {
		c.print(dimStyle.Render(fmt.Sprintf("  %s: %d correct, %d wrong, %d skipped",
			result.SectionName, result.CorrectCount, result.WrongCount, result.SkippedCount)))
	}

	if len(breakdown) > 0 {
		c.Blank()
		c.print(titleStyle.Render("Topic Breakdown"))
		for _, topic := range sortedTopics(breakdown) {
			stats := breakdown[topic]
			line := fmt.Sprintf("  %-22s %d/%d (%.0f%%)",
				exam.DisplayName(topic), stats.Correct, stats.Total, stats.Accuracy*100)
			if stats.Accuracy < 0.6 {
				c.print(warningStyle.Render(line))
			} else {
				c.print(bodyStyle.Render(line))
			}
		}
	}
}

func (c *Console) WritingPrompt(text string, timeMinutes int) {
	c.Blank()
	c.print(titleStyle.Render("Writing Sample"))
	c.print(dimStyle.Render(fmt.Sprintf("Suggested time: %d minutes. Finish with two blank lines.", timeMinutes)))
	c.Blank()
	c.print(passageStyle.Render(text))
	c.Blank()
}

func (c *Console) WritingFeedback(text string) {
	c.Blank()
	c.print(cardStyle.Render(titleStyle.Render("Feedback") + "\n" + bodyStyle.Render(text)))
	c.Blank()
}

func (c *Console) PastWritingSamples(samples []*store.WritingSample) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Past Writing Samples"))
	for i, s := range samples {
		preview := s.Prompt
		if len(preview) > 60 {
			preview = preview[:60] + "..."
		}
		fmt.Fprintf(&b, "\n  %d. %s  %s", i+1,
			dimStyle.Render(s.CreatedAt.Format("2006-01-02")), preview)
	}
	c.print(b.String())
	c.Blank()
}

func (c *Console) WritingSampleDetail(s *store.WritingSample) {
	c.Blank()
	c.print(stemStyle.Render("Prompt: ") + bodyStyle.Render(s.Prompt))
	c.Blank()
	c.print(stemStyle.Render("Your Response:"))
	c.print(bodyStyle.Render(s.Response))
	if s.Feedback != nil {
		c.WritingFeedback(*s.Feedback)
	}
}

func writeCategoryRow(b *strings.Builder, name string, scaled, percentile *int) {
	if scaled == nil {
		fmt.Fprintf(b, "%-16s %6s   %10s\n", name, "-", "-")
		return
	}
	pct := "-"
	if percentile != nil {
		pct = strconv.Itoa(*percentile)
	}
	fmt.Fprintf(b, "%-16s %6d   %10s\n", name, *scaled, pct)
}

func sortedTopics(breakdown map[exam.QuestionType]scoring.TopicStats) []exam.QuestionType {
	topics := make([]exam.QuestionType, 0, len(breakdown))
	for t := range breakdown {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		return breakdown[topics[i]].Accuracy < breakdown[topics[j]].Accuracy
	})
	return topics
}

func levelLabel(level exam.Level) string {
	if cfg, ok := exam.ConfigForLevel(level); ok {
		return cfg.DisplayName
	}
	return string(level)
}

func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
