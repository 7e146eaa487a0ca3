package qgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shailiguru/ssat-practice/internal/exam"
)

func levelDisplay(level exam.Level) string {
	if level == exam.LevelElementary {
		return "Elementary"
	}
	return "Middle"
}

var mathFocus = map[exam.QuestionType]string{
	exam.TypeArithmetic:  "arithmetic operations, fractions, decimals, percents",
	exam.TypeAlgebra:     "basic algebra, solving for x, evaluating expressions, order of operations",
	exam.TypeGeometry:    "area, perimeter, volume, angles, shapes, coordinate plane basics",
	exam.TypeWordProblem: "multi-step word problems requiring mathematical reasoning",
}

func isMathType(qtype exam.QuestionType) bool {
	_, ok := mathFocus[qtype]
	return ok
}

func questionSystemPrompt(qtype exam.QuestionType, level exam.Level, grade, difficulty int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert SSAT test question writer. Generate %s Level "+
		"SSAT questions appropriate for a student currently in grade %d.\n\n",
		levelDisplay(level), grade)
	b.WriteString("Requirements:\n")
	b.WriteString("- Each question must have exactly 5 answer choices (A through E)\n")
	b.WriteString("- Only ONE correct answer per question\n")
	b.WriteString("- Distractors should be plausible but clearly wrong to a well-prepared student\n")
	fmt.Fprintf(&b, "- Difficulty: %d/5 (where 3 = grade-level appropriate)\n", difficulty)
	b.WriteString("- Return ONLY valid JSON, no other text\n\n")

	switch {
	case qtype == exam.TypeSynonym:
		b.WriteString("Generate SYNONYM questions. Each question presents a word in CAPS and asks " +
			"which choice is closest in meaning.\n" +
			"Format: 'WORD most nearly means...'\n")
		fmt.Fprintf(&b, "Use vocabulary appropriate for grade %d.\n", grade)
		if difficulty <= 2 {
			b.WriteString("Avoid obscure words.\n")
		}
		if difficulty >= 4 {
			b.WriteString("Include more challenging vocabulary.\n")
		}
	case qtype == exam.TypeAnalogy:
		b.WriteString("Generate ANALOGY questions using the format: " +
			"'X is to Y as ___ is to ___'\n" +
			"Relationship types to use: synonyms, antonyms, part-to-whole, " +
			"cause-effect, degree/intensity, category, function/purpose.\n")
		if level == exam.LevelElementary {
			b.WriteString("Use simple, concrete relationships.\n")
		} else {
			b.WriteString("Use abstract relationships too.\n")
		}
	case isMathType(qtype):
		fmt.Fprintf(&b, "Generate QUANTITATIVE (math) questions focusing on: %s.\n", mathFocus[qtype])
		b.WriteString("No calculator allowed. Ensure arithmetic produces clean answers.\n")
		if level == exam.LevelElementary {
			b.WriteString("For elementary: stick to whole numbers, basic fractions, simple geometry.\n")
		} else {
			b.WriteString("For middle level: include negative numbers, ratios, proportions, more complex operations.\n")
		}
		b.WriteString("Include the full solution steps in the explanation.\n" +
			"\nCRITICAL: You MUST double-check every math question before returning it.\n" +
			"1. Solve the problem yourself step by step.\n" +
			"2. Verify your computed answer matches one of the 5 choices.\n" +
			"3. Set correct_answer to the letter (A-E) of THAT matching choice.\n" +
			"4. The explanation MUST show the work AND its final answer MUST match the choice labeled by correct_answer.\n" +
			"If the answer does not appear among the choices, regenerate the question.\n")
	}

	fmt.Fprintf(&b, "\nReturn JSON with this exact structure:\n"+
		`{"questions": [{"stem": "question text", `+
		`"choices": {"A": "first choice", "B": "second choice", "C": "third choice", `+
		`"D": "fourth choice", "E": "fifth choice"}, `+
		`"correct_answer": "B", `+
		`"explanation": "Why B is correct", `+
		`"topic": "%s"}]}`, qtype)
	return b.String()
}

// varietySeeds nudge the model away from repeating scenarios across
// batches.
var varietySeeds = []string{
	"Use creative, original scenarios.",
	"Use diverse real-world contexts and themes.",
	"Vary the subject matter widely: nature, sports, cooking, travel, science, history.",
	"Make each question unique with different contexts and numbers.",
	"Use a wide range of topics and settings.",
	"Include varied scenarios such as school, animals, weather, space, food, music.",
}

func questionUserPrompt(qtype exam.QuestionType, count, difficulty, grade int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d %s questions at difficulty %d/5 for grade %d.",
		count, qtype, difficulty, grade)
	fmt.Fprintf(&b, "\n%s", varietySeeds[rand.IntN(len(varietySeeds))])
	b.WriteString("\nEach question must be substantially different from the others: vary the context, numbers, and wording.")
	b.WriteString("\nReturn ONLY the JSON object, no markdown formatting or code blocks.")
	return b.String()
}

func readingSystemPrompt(level exam.Level, grade, difficulty int) string {
	return fmt.Sprintf("You are an expert SSAT test question writer. Generate %s Level "+
		"SSAT reading comprehension content for a student in grade %d.\n\n"+
		"Requirements:\n"+
		"- Each passage should be engaging and age-appropriate\n"+
		"- Mix genres: fiction, nonfiction, science, social studies, poetry\n"+
		"- Each question must have exactly 5 answer choices (A through E)\n"+
		"- Question types: main idea, supporting details, inference, "+
		"vocabulary in context, tone/purpose\n"+
		"- Difficulty: %d/5\n"+
		"- Return ONLY valid JSON, no other text\n",
		levelDisplay(level), grade, difficulty)
}

func readingUserPrompt(level exam.Level, passages, perPassage int) string {
	wordCount := 300
	if level == exam.LevelElementary {
		wordCount = 150
	}
	return fmt.Sprintf("Generate %d reading comprehension passages.\n"+
		"Each passage should be approximately %d words.\n"+
		"For each passage, generate %d multiple-choice questions.\n"+
		"Mix passage topics: fiction, nonfiction, science, social studies.\n\n"+
		"Return as JSON with this exact structure:\n"+
		`{"passages": [{"passage_text": "...", "questions": [{"stem": "...", `+
		`"choices": {"A": "...", "B": "...", "C": "...", "D": "...", "E": "..."}, `+
		`"correct_answer": "B", "explanation": "...", `+
		`"topic": "main_idea|inference|detail|vocabulary_in_context|tone"}]}]}`,
		passages, wordCount, perPassage)
}

func writingSystemPrompt(level exam.Level, grade int) string {
	return fmt.Sprintf("You are a warm, encouraging writing tutor for a student in grade %d. "+
		"Provide constructive feedback on their writing for a %s-level SSAT writing sample.\n\n"+
		"Guidelines:\n"+
		"- Start with specific praise (what they did well)\n"+
		"- Note 2-3 areas for improvement\n"+
		"- Use age-appropriate language\n"+
		"- Be encouraging and supportive throughout\n"+
		"- Comment on: organization, use of details, creativity, grammar\n"+
		"- Keep feedback to 150-200 words\n"+
		"- Do NOT give a grade or score",
		grade, level)
}

func writingUserPrompt(promptText, response string) string {
	return fmt.Sprintf("Writing Prompt: %s\n\n"+
		"Student's Response:\n%s\n\n"+
		"Please provide encouraging, constructive feedback.",
		promptText, response)
}
