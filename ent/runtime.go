// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/shailiguru/ssat-practice/ent/answer"
	"github.com/shailiguru/ssat-practice/ent/llmrequestevent"
	"github.com/shailiguru/ssat-practice/ent/question"
	"github.com/shailiguru/ssat-practice/ent/schema"
	"github.com/shailiguru/ssat-practice/ent/student"
	"github.com/shailiguru/ssat-practice/ent/testsession"
	"github.com/shailiguru/ssat-practice/ent/topicmastery"
	"github.com/shailiguru/ssat-practice/ent/writingsample"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescIsCorrect is the schema descriptor for is_correct field.
	answerDescIsCorrect := answerFields[4].Descriptor()
	// answer.DefaultIsCorrect holds the default value on creation for the is_correct field.
	answer.DefaultIsCorrect = answerDescIsCorrect.Default.(bool)
	// answerDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	answerDescTimeSpentSeconds := answerFields[5].Descriptor()
	// answer.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	answer.DefaultTimeSpentSeconds = answerDescTimeSpentSeconds.Default.(float64)
	// answerDescAnsweredAt is the schema descriptor for answered_at field.
	answerDescAnsweredAt := answerFields[6].Descriptor()
	// answer.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	answer.DefaultAnsweredAt = answerDescAnsweredAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescLevel is the schema descriptor for level field.
	questionDescLevel := questionFields[0].Descriptor()
	// question.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	question.LevelValidator = questionDescLevel.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[1].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[2].Descriptor()
	// question.DefaultTopic holds the default value on creation for the topic field.
	question.DefaultTopic = questionDescTopic.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[3].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(int)
	// questionDescStem is the schema descriptor for stem field.
	questionDescStem := questionFields[4].Descriptor()
	// question.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	question.StemValidator = questionDescStem.Validators[0].(func(string) error)
	// questionDescCorrectAnswer is the schema descriptor for correct_answer field.
	questionDescCorrectAnswer := questionFields[7].Descriptor()
	// question.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	question.CorrectAnswerValidator = questionDescCorrectAnswer.Validators[0].(func(string) error)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[8].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescBatchID is the schema descriptor for batch_id field.
	questionDescBatchID := questionFields[9].Descriptor()
	// question.DefaultBatchID holds the default value on creation for the batch_id field.
	question.DefaultBatchID = questionDescBatchID.Default.(string)
	// questionDescGeneratedAt is the schema descriptor for generated_at field.
	questionDescGeneratedAt := questionFields[10].Descriptor()
	// question.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	question.DefaultGeneratedAt = questionDescGeneratedAt.Default.(func() time.Time)
	studentFields := schema.Student{}.Fields()
	_ = studentFields
	// studentDescName is the schema descriptor for name field.
	studentDescName := studentFields[0].Descriptor()
	// student.NameValidator is a validator for the "name" field. It is called by the builders before save.
	student.NameValidator = studentDescName.Validators[0].(func(string) error)
	// studentDescLevel is the schema descriptor for level field.
	studentDescLevel := studentFields[2].Descriptor()
	// student.DefaultLevel holds the default value on creation for the level field.
	student.DefaultLevel = studentDescLevel.Default.(string)
	// studentDescCreatedAt is the schema descriptor for created_at field.
	studentDescCreatedAt := studentFields[3].Descriptor()
	// student.DefaultCreatedAt holds the default value on creation for the created_at field.
	student.DefaultCreatedAt = studentDescCreatedAt.Default.(func() time.Time)
	testsessionFields := schema.TestSession{}.Fields()
	_ = testsessionFields
	// testsessionDescLevel is the schema descriptor for level field.
	testsessionDescLevel := testsessionFields[1].Descriptor()
	// testsession.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	testsession.LevelValidator = testsessionDescLevel.Validators[0].(func(string) error)
	// testsessionDescGrade is the schema descriptor for grade field.
	testsessionDescGrade := testsessionFields[2].Descriptor()
	// testsession.DefaultGrade holds the default value on creation for the grade field.
	testsession.DefaultGrade = testsessionDescGrade.Default.(int)
	// testsessionDescMode is the schema descriptor for mode field.
	testsessionDescMode := testsessionFields[3].Descriptor()
	// testsession.DefaultMode holds the default value on creation for the mode field.
	testsession.DefaultMode = testsessionDescMode.Default.(string)
	// testsessionDescStartedAt is the schema descriptor for started_at field.
	testsessionDescStartedAt := testsessionFields[4].Descriptor()
	// testsession.DefaultStartedAt holds the default value on creation for the started_at field.
	testsession.DefaultStartedAt = testsessionDescStartedAt.Default.(func() time.Time)
	topicmasteryFields := schema.TopicMastery{}.Fields()
	_ = topicmasteryFields
	// topicmasteryDescTopicTag is the schema descriptor for topic_tag field.
	topicmasteryDescTopicTag := topicmasteryFields[1].Descriptor()
	// topicmastery.TopicTagValidator is a validator for the "topic_tag" field. It is called by the builders before save.
	topicmastery.TopicTagValidator = topicmasteryDescTopicTag.Validators[0].(func(string) error)
	// topicmasteryDescDifficultyLevel is the schema descriptor for difficulty_level field.
	topicmasteryDescDifficultyLevel := topicmasteryFields[2].Descriptor()
	// topicmastery.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	topicmastery.DefaultDifficultyLevel = topicmasteryDescDifficultyLevel.Default.(float64)
	// topicmasteryDescTotalAttempted is the schema descriptor for total_attempted field.
	topicmasteryDescTotalAttempted := topicmasteryFields[3].Descriptor()
	// topicmastery.DefaultTotalAttempted holds the default value on creation for the total_attempted field.
	topicmastery.DefaultTotalAttempted = topicmasteryDescTotalAttempted.Default.(int)
	// topicmasteryDescTotalCorrect is the schema descriptor for total_correct field.
	topicmasteryDescTotalCorrect := topicmasteryFields[4].Descriptor()
	// topicmastery.DefaultTotalCorrect holds the default value on creation for the total_correct field.
	topicmastery.DefaultTotalCorrect = topicmasteryDescTotalCorrect.Default.(int)
	// topicmasteryDescLast50Attempted is the schema descriptor for last_50_attempted field.
	topicmasteryDescLast50Attempted := topicmasteryFields[5].Descriptor()
	// topicmastery.DefaultLast50Attempted holds the default value on creation for the last_50_attempted field.
	topicmastery.DefaultLast50Attempted = topicmasteryDescLast50Attempted.Default.(int)
	// topicmasteryDescLast50Correct is the schema descriptor for last_50_correct field.
	topicmasteryDescLast50Correct := topicmasteryFields[6].Descriptor()
	// topicmastery.DefaultLast50Correct holds the default value on creation for the last_50_correct field.
	topicmastery.DefaultLast50Correct = topicmasteryDescLast50Correct.Default.(int)
	// topicmasteryDescUpdatedAt is the schema descriptor for updated_at field.
	topicmasteryDescUpdatedAt := topicmasteryFields[7].Descriptor()
	// topicmastery.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topicmastery.DefaultUpdatedAt = topicmasteryDescUpdatedAt.Default.(func() time.Time)
	// topicmastery.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topicmastery.UpdateDefaultUpdatedAt = topicmasteryDescUpdatedAt.UpdateDefault.(func() time.Time)
	writingsampleFields := schema.WritingSample{}.Fields()
	_ = writingsampleFields
	// writingsampleDescPrompt is the schema descriptor for prompt field.
	writingsampleDescPrompt := writingsampleFields[2].Descriptor()
	// writingsample.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	writingsample.PromptValidator = writingsampleDescPrompt.Validators[0].(func(string) error)
	// writingsampleDescResponse is the schema descriptor for response field.
	writingsampleDescResponse := writingsampleFields[3].Descriptor()
	// writingsample.DefaultResponse holds the default value on creation for the response field.
	writingsample.DefaultResponse = writingsampleDescResponse.Default.(string)
	// writingsampleDescCreatedAt is the schema descriptor for created_at field.
	writingsampleDescCreatedAt := writingsampleFields[5].Descriptor()
	// writingsample.DefaultCreatedAt holds the default value on creation for the created_at field.
	writingsample.DefaultCreatedAt = writingsampleDescCreatedAt.Default.(func() time.Time)
}
