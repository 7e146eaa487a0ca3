// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "selected_answer", Type: field.TypeString, Nullable: true},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "time_spent_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "answered_at", Type: field.TypeTime},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_student_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[3]},
			},
			{
				Name:    "answer_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1]},
			},
			{
				Name:    "answer_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[2]},
			},
			{
				Name:    "answer_student_id_is_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[3], AnswersColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: 3},
		{Name: "stem", Type: field.TypeString},
		{Name: "passage", Type: field.TypeString, Nullable: true},
		{Name: "choices", Type: field.TypeJSON},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Default: ""},
		{Name: "batch_id", Type: field.TypeString, Default: ""},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_level_question_type_difficulty",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2], QuestionsColumns[4]},
			},
			{
				Name:    "question_batch_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[10]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "level", Type: field.TypeString, Default: "elementary"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
	}
	// TestSessionsColumns holds the columns for the "test_sessions" table.
	TestSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "level", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt, Default: 4},
		{Name: "mode", Type: field.TypeString, Default: "full_test"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "verbal_raw", Type: field.TypeFloat64, Nullable: true},
		{Name: "verbal_scaled", Type: field.TypeInt, Nullable: true},
		{Name: "verbal_percentile", Type: field.TypeInt, Nullable: true},
		{Name: "quantitative_raw", Type: field.TypeFloat64, Nullable: true},
		{Name: "quantitative_scaled", Type: field.TypeInt, Nullable: true},
		{Name: "quantitative_percentile", Type: field.TypeInt, Nullable: true},
		{Name: "reading_raw", Type: field.TypeFloat64, Nullable: true},
		{Name: "reading_scaled", Type: field.TypeInt, Nullable: true},
		{Name: "reading_percentile", Type: field.TypeInt, Nullable: true},
		{Name: "total_scaled", Type: field.TypeInt, Nullable: true},
	}
	// TestSessionsTable holds the schema information for the "test_sessions" table.
	TestSessionsTable = &schema.Table{
		Name:       "test_sessions",
		Columns:    TestSessionsColumns,
		PrimaryKey: []*schema.Column{TestSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testsession_student_id_mode",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[1], TestSessionsColumns[4]},
			},
			{
				Name:    "testsession_started_at",
				Unique:  false,
				Columns: []*schema.Column{TestSessionsColumns[5]},
			},
		},
	}
	// TopicMasteriesColumns holds the columns for the "topic_masteries" table.
	TopicMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "topic_tag", Type: field.TypeString},
		{Name: "difficulty_level", Type: field.TypeFloat64, Default: 3},
		{Name: "total_attempted", Type: field.TypeInt, Default: 0},
		{Name: "total_correct", Type: field.TypeInt, Default: 0},
		{Name: "last_50_attempted", Type: field.TypeInt, Default: 0},
		{Name: "last_50_correct", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TopicMasteriesTable holds the schema information for the "topic_masteries" table.
	TopicMasteriesTable = &schema.Table{
		Name:       "topic_masteries",
		Columns:    TopicMasteriesColumns,
		PrimaryKey: []*schema.Column{TopicMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicmastery_student_id_topic_tag",
				Unique:  true,
				Columns: []*schema.Column{TopicMasteriesColumns[1], TopicMasteriesColumns[2]},
			},
		},
	}
	// WritingSamplesColumns holds the columns for the "writing_samples" table.
	WritingSamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeInt, Nullable: true},
		{Name: "prompt", Type: field.TypeString},
		{Name: "response", Type: field.TypeString, Default: ""},
		{Name: "feedback", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WritingSamplesTable holds the schema information for the "writing_samples" table.
	WritingSamplesTable = &schema.Table{
		Name:       "writing_samples",
		Columns:    WritingSamplesColumns,
		PrimaryKey: []*schema.Column{WritingSamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "writingsample_student_id",
				Unique:  false,
				Columns: []*schema.Column{WritingSamplesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		LlmRequestEventsTable,
		QuestionsTable,
		StudentsTable,
		TestSessionsTable,
		TopicMasteriesTable,
		WritingSamplesTable,
	}
)

func init() {
}
